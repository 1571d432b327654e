package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create пишет заказ и его строки в рамках транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (number, session_id, coupon_code, subtotal, discount, shipping, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		order.Number,
		order.SessionID,
		order.CouponCode,
		order.SubtotalCents,
		order.DiscountCents,
		order.ShippingCents,
		order.TaxCents,
		order.TotalCents,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, size, color, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, itemQuery,
			order.ID, line.ProductID, line.Size, line.Color, line.Quantity, line.UnitPriceCents,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return order, nil
}
