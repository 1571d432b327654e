package usecase

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/pricing"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckoutUseCase фиксирует заказ: итоги пересчитываются движком
// ценообразования, заказ и outbox-событие пишутся в одной транзакции,
// после коммита корзина сессии очищается.
type CheckoutUseCase struct {
	cartRepo   CartRepository
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewCheckoutUC(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:   cartRepo,
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// orderPlacedPayload — JSON-тело события order.placed для Kafka.
type orderPlacedPayload struct {
	EventID     string  `json:"event_id"`
	OrderNumber string  `json:"order_number"`
	SessionID   string  `json:"session_id"`
	CouponCode  *string `json:"coupon_code,omitempty"`
	Subtotal    int64   `json:"subtotal_cents"`
	Discount    int64   `json:"discount_cents"`
	Shipping    int64   `json:"shipping_cents"`
	Tax         int64   `json:"tax_cents"`
	GrandTotal  int64   `json:"grand_total_cents"`
	Lines       []orderPlacedLine `json:"lines"`
}

type orderPlacedLine struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price_cents"`
}

// PlaceOrder оформляет заказ текущей корзины сессии.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	cart, err := c.cartRepo.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.IsEmpty() {
		return nil, e.ErrEmptyCart
	}

	totals := pricing.ComputeTotals(cart)
	order := c.buildOrder(req.SessionID, cart, totals)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := c.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := c.buildPayload(created)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderPlaced, created.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Корзина очищается после коммита; ошибка очистки не отменяет заказ
	if err := c.cartRepo.Delete(ctx, req.SessionID); err != nil {
		c.logger.Warnf("failed to clear cart after checkout, session: %s: %v", req.SessionID, err)
	}

	c.logger.Infof("order placed: %s", created.Number)
	return &PlaceOrderRes{OrderNumber: created.Number, Totals: totals}, nil
}

func (c *CheckoutUseCase) buildOrder(sessionID string, cart *domain.Cart, totals pricing.Totals) *domain.Order {
	order := domain.NewOrder(uuid.NewString(), sessionID, cart.Lines)
	if cart.Coupon != nil {
		code := cart.Coupon.Code
		order.CouponCode = &code
	}

	order.SubtotalCents, order.DiscountCents, order.ShippingCents, order.TaxCents, order.TotalCents = totals.RoundedCents()
	return order
}

func (c *CheckoutUseCase) buildPayload(order *domain.Order) ([]byte, error) {
	lines := make([]orderPlacedLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, orderPlacedLine{
			ProductID: l.ProductID,
			Size:      l.Size,
			Color:     l.Color,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPriceCents,
		})
	}

	return json.Marshal(orderPlacedPayload{
		EventID:     uuid.NewString(),
		OrderNumber: order.Number,
		SessionID:   order.SessionID,
		CouponCode:  order.CouponCode,
		Subtotal:    order.SubtotalCents,
		Discount:    order.DiscountCents,
		Shipping:    order.ShippingCents,
		Tax:         order.TaxCents,
		GrandTotal:  order.TotalCents,
		Lines:       lines,
	})
}
