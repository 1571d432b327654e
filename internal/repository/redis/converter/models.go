package converter

// CartLineRedisModel — строка корзины в JSON-представлении для Redis.
type CartLineRedisModel struct {
	ProductID              int64  `json:"product_id"`
	Slug                   string `json:"slug"`
	Name                   string `json:"name"`
	Brand                  string `json:"brand"`
	Size                   string `json:"size"`
	Color                  string `json:"color"`
	Quantity               int    `json:"quantity"`
	MaxQuantity            int    `json:"max_quantity"`
	UnitPriceCents         int64  `json:"unit_price"`
	OriginalUnitPriceCents *int64 `json:"original_unit_price,omitempty"`
	ImageKey               string `json:"image_key,omitempty"`
}

type CouponRedisModel struct {
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discount_percent"`
}

// CartRedisModel — состояние корзины сессии, как оно хранится в Redis.
type CartRedisModel struct {
	Lines  []CartLineRedisModel `json:"lines"`
	Coupon *CouponRedisModel    `json:"coupon,omitempty"`
}
