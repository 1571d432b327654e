package http

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cents, err := parsePriceToCents("59.99")
	require.NoError(t, err)
	assert.Equal(t, int64(5999), cents)

	cents, err = parsePriceToCents("60")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), cents)

	_, err = parsePriceToCents("-1")
	assert.ErrorIs(t, err, e.ErrInvalidPriceRange)

	_, err = parsePriceToCents("9.999")
	assert.ErrorIs(t, err, e.ErrInvalidPriceRange)

	_, err = parsePriceToCents("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPriceRange)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "129.99", formatCents(12999))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "5.99", formatCents(599))
}

func TestParseFiltersDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products", nil)

	filters, err := parseFilters(r)

	require.NoError(t, err)
	assert.Empty(t, filters.Categories)
	assert.Empty(t, filters.Brands)
	assert.Equal(t, int64(0), filters.PriceMinCents)
	assert.Equal(t, int64(math.MaxInt64), filters.PriceMaxCents)
}

func TestParseFiltersFacets(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?categories=botas,camisetas&brands=Nike&price_min=10&price_max=150", nil)

	filters, err := parseFilters(r)

	require.NoError(t, err)
	assert.Equal(t, []string{"botas", "camisetas"}, filters.Categories)
	assert.Equal(t, []string{"Nike"}, filters.Brands)
	assert.Equal(t, int64(1000), filters.PriceMinCents)
	assert.Equal(t, int64(15000), filters.PriceMaxCents)
}

func TestParseFiltersInvertedRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?price_min=100&price_max=10", nil)

	_, err := parseFilters(r)

	assert.ErrorIs(t, err, e.ErrInvalidPriceRange)
}

func TestEnsureSessionIssuesAndEchoes(t *testing.T) {
	// Без заголовка выпускается новый идентификатор
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/cart", nil)
	issued := ensureSession(w, r)
	assert.NotEmpty(t, issued)
	assert.Equal(t, issued, w.Header().Get(sessionHeader))

	// Существующий идентификатор дублируется в ответ как есть
	w = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/api/v1/cart", nil)
	r.Header.Set(sessionHeader, "known-session")
	assert.Equal(t, "known-session", ensureSession(w, r))
	assert.Equal(t, "known-session", w.Header().Get(sessionHeader))
}
