package pricing

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Бизнес-константы заказа, валюта — евро.
const (
	FreeShippingThresholdCents int64 = 5000 // 50.00
	FlatShippingFeeCents       int64 = 599  // 5.99
)

// TaxRate — единая ставка налога (21% IVA), применяется после скидки,
// доставка не облагается.
var TaxRate = decimal.New(21, -2)

var oneHundred = decimal.NewFromInt(100)

// Totals — производные итоги заказа. Не хранятся, а пересчитываются из
// строк корзины и купона при каждом запросе. Промежуточные суммы несут
// полную точность; округление до двух знаков происходит только на границе
// отображения (Display) и при фиксации заказа (RoundedCents).
type Totals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// DisplayTotals — суммы, округлённые до двух знаков, для слоя представления.
type DisplayTotals struct {
	Subtotal   string
	Discount   string
	Shipping   string
	Tax        string
	GrandTotal string
}

// ComputeTotals считает итоги заказа как чистую функцию состояния корзины:
//
//	subtotal   = Σ unitPrice × quantity
//	discount   = subtotal × percent / 100 (при активном купоне)
//	shipping   = 0 при subtotal ≥ 50.00, иначе 5.99
//	tax        = (subtotal − discount) × 0.21
//	grandTotal = subtotal − discount + shipping + tax
//
// Порог бесплатной доставки сравнивается с subtotal ДО скидки — перенесённое
// как есть поведение исходной витрины.
func ComputeTotals(cart *domain.Cart) Totals {
	var subtotalCents int64
	for i := range cart.Lines {
		subtotalCents += cart.Lines[i].UnitPriceCents * int64(cart.Lines[i].Quantity)
	}
	subtotal := centsToDecimal(subtotalCents)

	discount := decimal.Zero
	if cart.Coupon != nil {
		discount = subtotal.Mul(decimal.NewFromInt(cart.Coupon.DiscountPercent)).Div(oneHundred)
	}

	shipping := decimal.Zero
	if subtotalCents < FreeShippingThresholdCents {
		shipping = centsToDecimal(FlatShippingFeeCents)
	}

	tax := subtotal.Sub(discount).Mul(TaxRate)

	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Sub(discount).Add(shipping).Add(tax),
	}
}

// Display округляет итоги до двух знаков для отображения.
func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal:   t.Subtotal.StringFixed(2),
		Discount:   t.Discount.StringFixed(2),
		Shipping:   t.Shipping.StringFixed(2),
		Tax:        t.Tax.StringFixed(2),
		GrandTotal: t.GrandTotal.StringFixed(2),
	}
}

// RoundedCents возвращает суммы в центах, округлённые до двух знаков, для
// фиксации заказа в хранилище.
func (t Totals) RoundedCents() (subtotal, discount, shipping, tax, grandTotal int64) {
	return toCents(t.Subtotal), toCents(t.Discount), toCents(t.Shipping), toCents(t.Tax), toCents(t.GrandTotal)
}

// FreeShippingGapCents сообщает, сколько центов не хватает до бесплатной
// доставки; 0 — порог уже достигнут. Используется подсказкой в корзине.
func FreeShippingGapCents(cart *domain.Cart) int64 {
	var subtotalCents int64
	for i := range cart.Lines {
		subtotalCents += cart.Lines[i].UnitPriceCents * int64(cart.Lines[i].Quantity)
	}

	if subtotalCents >= FreeShippingThresholdCents {
		return 0
	}

	return FreeShippingThresholdCents - subtotalCents
}

func centsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func toCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}
