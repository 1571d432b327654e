package pricing

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func originalPrice(cents int64) *int64 {
	return &cents
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:                 1,
		Name:               "Nike Street Gato Magos Edition",
		Slug:               "nike-street-gato-magos-edition",
		Brand:              "Nike",
		CategoryID:         "botas",
		PriceCents:         12999,
		OriginalPriceCents: originalPrice(15999),
		ImageKeys:          []string{"products/gato-1.jpg", "products/gato-2.jpg"},
		Colors:             []string{"Negro", "Morado"},
		Variants: []domain.Variant{
			{Size: "41", Stock: 3},
			{Size: "42", Stock: 25},
			{Size: "44", Stock: 0},
		},
	}
}

func TestAddLineNewLine(t *testing.T) {
	cart := domain.NewCart()
	product := testProduct()

	require.NoError(t, AddLine(cart, product, "42", "Negro", 2))

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, MaxQuantityPerLine, line.MaxQuantity) // min(25, 10)
	assert.Equal(t, int64(12999), line.UnitPriceCents)
	assert.Equal(t, "products/gato-1.jpg", line.ImageKey)
}

func TestAddLineMaxQuantityFollowsStock(t *testing.T) {
	cart := domain.NewCart()

	require.NoError(t, AddLine(cart, testProduct(), "41", "", 5))

	// Остатка всего 3 — количество и потолок ограничены остатком
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.Lines[0].MaxQuantity)
}

func TestAddLineMergesSameKey(t *testing.T) {
	cart := domain.NewCart()
	product := testProduct()

	require.NoError(t, AddLine(cart, product, "42", "Negro", 4))
	require.NoError(t, AddLine(cart, product, "42", "Negro", 4))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 8, cart.Lines[0].Quantity)

	// Третье добавление упирается в потолок
	require.NoError(t, AddLine(cart, product, "42", "Negro", 4))
	assert.Equal(t, MaxQuantityPerLine, cart.Lines[0].Quantity)
}

func TestAddLineDifferentColorIsSeparateLine(t *testing.T) {
	cart := domain.NewCart()
	product := testProduct()

	require.NoError(t, AddLine(cart, product, "42", "Negro", 1))
	require.NoError(t, AddLine(cart, product, "42", "Morado", 1))

	assert.Len(t, cart.Lines, 2)
}

func TestAddLineRejections(t *testing.T) {
	cart := domain.NewCart()
	product := testProduct()

	assert.ErrorIs(t, AddLine(cart, product, "42", "", 0), e.ErrInvalidQuantity)
	assert.ErrorIs(t, AddLine(cart, product, "38", "", 1), e.ErrUnknownSize)
	assert.ErrorIs(t, AddLine(cart, product, "44", "", 1), e.ErrOutOfStock)

	// Отклонённая мутация не меняет состояние
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityClampsToCeiling(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, AddLine(cart, testProduct(), "42", "Negro", 1))
	key := cart.Lines[0].Key()

	SetQuantity(cart, key, 99)

	assert.Equal(t, MaxQuantityPerLine, cart.Lines[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, AddLine(cart, testProduct(), "42", "Negro", 2))
	key := cart.Lines[0].Key()

	SetQuantity(cart, key, 0)

	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityUnknownLineIsNoop(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, AddLine(cart, testProduct(), "42", "Negro", 2))

	SetQuantity(cart, domain.LineKey{ProductID: 99, Size: "42"}, 5)

	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestRemoveLine(t *testing.T) {
	cart := domain.NewCart()
	product := testProduct()
	require.NoError(t, AddLine(cart, product, "42", "Negro", 1))
	require.NoError(t, AddLine(cart, product, "42", "Morado", 1))

	RemoveLine(cart, domain.LineKey{ProductID: product.ID, Size: "42", Color: "Negro"})

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Morado", cart.Lines[0].Color)

	// Повторное удаление — no-op
	RemoveLine(cart, domain.LineKey{ProductID: product.ID, Size: "42", Color: "Negro"})
	assert.Len(t, cart.Lines, 1)
}
