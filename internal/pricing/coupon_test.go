package pricing

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCouponNormalizesCode(t *testing.T) {
	cart := domain.NewCart()

	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "  magos10 "))

	require.NotNil(t, cart.Coupon)
	assert.Equal(t, "MAGOS10", cart.Coupon.Code)
	assert.Equal(t, int64(10), cart.Coupon.DiscountPercent)
}

func TestApplyCouponUnknownCode(t *testing.T) {
	cart := domain.NewCart()

	err := ApplyCoupon(cart, DefaultCoupons(), "NOPE50")

	assert.ErrorIs(t, err, e.ErrInvalidCoupon)
	assert.Nil(t, cart.Coupon)
}

func TestApplyCouponAlreadyApplied(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "FUTSAL20"))

	// Второй купон отклоняется, даже если код валидный — активный не меняется
	err := ApplyCoupon(cart, DefaultCoupons(), "DOZURTV15")

	assert.ErrorIs(t, err, e.ErrCouponAlreadyApplied)
	assert.Equal(t, "FUTSAL20", cart.Coupon.Code)
}

func TestRemoveCouponRoundTrip(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, AddLine(cart, testProduct(), "42", "Negro", 3))

	pristine := domain.NewCart()
	require.NoError(t, AddLine(pristine, testProduct(), "42", "Negro", 3))
	baseline := ComputeTotals(pristine)

	// Без активного купона снятие безвредно
	RemoveCoupon(cart)
	assert.Nil(t, cart.Coupon)

	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "DOZURTV15"))
	RemoveCoupon(cart)
	assert.Nil(t, cart.Coupon)

	// Итоги после применения и снятия совпадают с корзиной, купона не видевшей
	got := ComputeTotals(cart)
	assert.True(t, got.Discount.IsZero())
	assert.True(t, got.Subtotal.Equal(baseline.Subtotal))
	assert.True(t, got.Tax.Equal(baseline.Tax))
	assert.True(t, got.GrandTotal.Equal(baseline.GrandTotal))

	// После снятия можно применить заново
	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "MAGOS10"))
	assert.Equal(t, "MAGOS10", cart.Coupon.Code)
}
