package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Восстановимые сигналы движка заказа: состояние корзины не меняется
	ErrInvalidCoupon        = fmt.Errorf("coupon code is not valid")
	ErrCouponAlreadyApplied = fmt.Errorf("a coupon is already applied")
	ErrOutOfStock           = fmt.Errorf("not enough stock available")

	// 400 Bad Request
	ErrStatusBadRequest   = fmt.Errorf("bad request")
	ErrMissingFields      = fmt.Errorf("missing required fields")
	ErrInvalidQuantity    = fmt.Errorf("quantity must be a positive integer")
	ErrInvalidPriceRange  = fmt.Errorf("invalid price range")
	ErrInvalidSortKey     = fmt.Errorf("unknown sort key")
	ErrSizeRequired       = fmt.Errorf("size is required")
	ErrColorRequired      = fmt.Errorf("color is required")
	ErrUnknownSize        = fmt.Errorf("product has no such size")
	ErrUnknownColor       = fmt.Errorf("product has no such color")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrLineNotFound    = fmt.Errorf("cart line not found")

	// 409 Conflict
	ErrEmptyCart = fmt.Errorf("cart is empty")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
