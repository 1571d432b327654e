package pricing

import (
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// CouponTable — фиксированная таблица купонов: код → процент скидки [0, 100].
// Таблица задаётся при старте и не редактируется пользователями.
type CouponTable map[string]int64

// DefaultCoupons возвращает таблицу купонов витрины.
func DefaultCoupons() CouponTable {
	return CouponTable{
		"MAGOS10":   10,
		"DOZURTV15": 15,
		"FUTSAL20":  20,
	}
}

// ApplyCoupon применяет купон к корзине. Переход допустим только из состояния
// «купон не применён»: повторная попытка отклоняется с ErrCouponAlreadyApplied,
// даже если UI скрывает кнопку применения. Код нормализуется до поиска в
// таблице, а не во время перебора. Неизвестный код — восстановимый сигнал
// ErrInvalidCoupon, состояние корзины не меняется.
func ApplyCoupon(cart *domain.Cart, table CouponTable, code string) error {
	if cart.Coupon != nil {
		return e.ErrCouponAlreadyApplied
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	percent, ok := table[normalized]
	if !ok {
		return e.ErrInvalidCoupon
	}

	cart.Coupon = &domain.AppliedCoupon{
		Code:            normalized,
		DiscountPercent: percent,
	}

	return nil
}

// RemoveCoupon снимает активный купон. Вызов без активного купона — no-op.
func RemoveCoupon(cart *domain.Cart) {
	cart.Coupon = nil
}
