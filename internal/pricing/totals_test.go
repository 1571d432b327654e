package pricing

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWith(lines ...domain.CartLine) *domain.Cart {
	return &domain.Cart{Lines: lines}
}

func TestComputeTotalsWithCoupon(t *testing.T) {
	// 129.99 × 1 + 39.99 × 2 = 209.97
	cart := cartWith(
		domain.CartLine{ProductID: 1, Size: "42", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 12999},
		domain.CartLine{ProductID: 2, Size: "M", Quantity: 2, MaxQuantity: 10, UnitPriceCents: 3999},
	)

	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "MAGOS10"))

	totals := ComputeTotals(cart)
	display := totals.Display()

	assert.Equal(t, "209.97", display.Subtotal)
	assert.Equal(t, "21.00", display.Discount) // 20.997 округляется на границе отображения
	assert.Equal(t, "0.00", display.Shipping)  // 209.97 ≥ 50.00
	assert.Equal(t, "39.68", display.Tax)      // (209.97 − 20.997) × 0.21 = 39.68433
	assert.Equal(t, "228.66", display.GrandTotal)

	// Промежуточные суммы несут полную точность
	assert.True(t, totals.Discount.Equal(decimal.RequireFromString("20.997")))
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("39.68433")))
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("228.65733")))
}

func TestComputeTotalsBelowFreeShippingThreshold(t *testing.T) {
	cart := cartWith(domain.CartLine{ProductID: 1, Size: "M", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 1000})

	display := ComputeTotals(cart).Display()

	assert.Equal(t, "10.00", display.Subtotal)
	assert.Equal(t, "0.00", display.Discount)
	assert.Equal(t, "5.99", display.Shipping)
	assert.Equal(t, "2.10", display.Tax)
	assert.Equal(t, "18.09", display.GrandTotal)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	display := ComputeTotals(domain.NewCart()).Display()

	assert.Equal(t, "0.00", display.Subtotal)
	assert.Equal(t, "0.00", display.Tax) // доставка не облагается
	assert.Equal(t, "5.99", display.Shipping)
	assert.Equal(t, "5.99", display.GrandTotal)
}

func TestComputeTotalsGrandTotalInvariant(t *testing.T) {
	carts := []*domain.Cart{
		cartWith(domain.CartLine{ProductID: 1, Size: "40", Quantity: 3, MaxQuantity: 10, UnitPriceCents: 2499}),
		cartWith(
			domain.CartLine{ProductID: 1, Size: "41", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 12999},
			domain.CartLine{ProductID: 2, Size: "S", Quantity: 5, MaxQuantity: 10, UnitPriceCents: 3999},
		),
		domain.NewCart(),
	}
	carts[1].Coupon = &domain.AppliedCoupon{Code: "FUTSAL20", DiscountPercent: 20}

	for _, cart := range carts {
		totals := ComputeTotals(cart)
		expected := totals.Subtotal.Sub(totals.Discount).Add(totals.Shipping).Add(totals.Tax)
		assert.True(t, totals.GrandTotal.Equal(expected))
	}
}

func TestShippingThresholdIgnoresDiscount(t *testing.T) {
	// 54.00 с купоном 20% даёт 43.20 после скидки, но порог сравнивается
	// с суммой ДО скидки — доставка остаётся бесплатной.
	cart := cartWith(domain.CartLine{ProductID: 1, Size: "M", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 5400})
	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "FUTSAL20"))

	totals := ComputeTotals(cart)

	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Subtotal.Sub(totals.Discount).LessThan(decimal.NewFromInt(50)))
}

func TestRoundedCents(t *testing.T) {
	cart := cartWith(
		domain.CartLine{ProductID: 1, Size: "42", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 12999},
		domain.CartLine{ProductID: 2, Size: "M", Quantity: 2, MaxQuantity: 10, UnitPriceCents: 3999},
	)
	require.NoError(t, ApplyCoupon(cart, DefaultCoupons(), "MAGOS10"))

	subtotal, discount, shipping, tax, grandTotal := ComputeTotals(cart).RoundedCents()

	assert.Equal(t, int64(20997), subtotal)
	assert.Equal(t, int64(2100), discount)
	assert.Equal(t, int64(0), shipping)
	assert.Equal(t, int64(3968), tax)
	assert.Equal(t, int64(22866), grandTotal)
}

func TestFreeShippingGapCents(t *testing.T) {
	cart := cartWith(domain.CartLine{ProductID: 1, Size: "M", Quantity: 1, MaxQuantity: 10, UnitPriceCents: 4200})
	assert.Equal(t, int64(800), FreeShippingGapCents(cart))

	cart.Lines[0].Quantity = 2
	assert.Equal(t, int64(0), FreeShippingGapCents(cart))

	assert.Equal(t, int64(5000), FreeShippingGapCents(domain.NewCart()))
}
