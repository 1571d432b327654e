package http

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartResponseCarriesResolvedImageURL(t *testing.T) {
	cart := domain.NewCart()
	cart.Lines = []domain.CartLine{{
		ProductID:      1,
		Slug:           "nike-street-gato-magos-edition",
		Name:           "Nike Street Gato Magos Edition",
		Brand:          "Nike",
		Size:           "42",
		Color:          "Negro",
		Quantity:       1,
		MaxQuantity:    10,
		UnitPriceCents: 12999,
		ImageKey:       "products/gato-1.jpg",
	}}

	res := usecase.NewCartRes(cart, []string{"https://cdn.test/products/gato-1.jpg"})
	response := newCartResponse(res)

	// Клиент получает развёрнутую ссылку, ключ объекта наружу не выходит
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "https://cdn.test/products/gato-1.jpg", response.Lines[0].ImageURL)
}
