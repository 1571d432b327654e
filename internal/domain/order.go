package domain

import "time"

// Order описывает оформленный заказ.
type Order struct {
	ID            int64
	Number        string // uuid, внешний номер заказа
	SessionID     string
	Lines         []CartLine
	CouponCode    *string
	SubtotalCents int64
	DiscountCents int64
	ShippingCents int64
	TaxCents      int64
	TotalCents    int64
	CreatedAt     time.Time
}

func NewOrder(number string, sessionID string, lines []CartLine) *Order {
	return &Order{
		Number:    number,
		SessionID: sessionID,
		Lines:     lines,
	}
}
