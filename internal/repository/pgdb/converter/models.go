package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                 int64    `db:"id"`
	Name               string   `db:"name"`
	Slug               string   `db:"slug"`
	Description        string   `db:"description"`
	PriceCents         int64    `db:"price"`
	OriginalPriceCents *int64   `db:"original_price"`
	CategoryID         string   `db:"category_id"`
	Brand              string   `db:"brand"`
	ImageKeys          []string `db:"image_keys"`
	Colors             []string `db:"colors"`
	Tags               []string `db:"tags"`
	Featured           bool     `db:"featured"`
	OnSale             bool     `db:"on_sale"`
}

// VariantModel представляет запись таблицы product_variants.
type VariantModel struct {
	ProductID int64  `db:"product_id"`
	Size      string `db:"size"`
	Stock     int    `db:"stock"`
}

// CategoryModel представляет запись таблицы categories.
type CategoryModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// OrderModel представляет запись таблицы orders.
type OrderModel struct {
	ID            int64     `db:"id"`
	Number        string    `db:"number"`
	SessionID     string    `db:"session_id"`
	CouponCode    *string   `db:"coupon_code"`
	SubtotalCents int64     `db:"subtotal"`
	DiscountCents int64     `db:"discount"`
	ShippingCents int64     `db:"shipping"`
	TaxCents      int64     `db:"tax"`
	TotalCents    int64     `db:"total"`
	CreatedAt     time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
