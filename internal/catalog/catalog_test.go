package catalog

import (
	"math"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noFilters() Filters {
	return Filters{PriceMaxCents: math.MaxInt64}
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Nike Street Gato", Slug: "nike-street-gato", CategoryID: "botas", Brand: "Nike", PriceCents: 12999, Featured: false},
		{ID: 2, Name: "Camiseta Pro", Slug: "camiseta-pro", CategoryID: "camisetas", Brand: "DOZURTV", PriceCents: 3999, Featured: true},
		{ID: 3, Name: "Camiseta Entreno", Slug: "camiseta-entreno", CategoryID: "camisetas", Brand: "DOZURTV", PriceCents: 3999, Featured: false},
		{ID: 4, Name: "Balón Futsal Pro", Slug: "balon-futsal-pro", CategoryID: "balones", Brand: "DOZURTV", PriceCents: 2499, Featured: true},
		{ID: 5, Name: "Ágil Munich G-3", Slug: "munich-g3", CategoryID: "botas", Brand: "Munich", PriceCents: 8999, Featured: false},
	}
}

func ids(products []domain.Product) []int64 {
	result := make([]int64, 0, len(products))
	for i := range products {
		result = append(result, products[i].ID)
	}

	return result
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortFeatured, key)

	key, err = ParseSortKey("price-low")
	require.NoError(t, err)
	assert.Equal(t, SortPriceLow, key)

	_, err = ParseSortKey("rating")
	assert.ErrorIs(t, err, e.ErrInvalidSortKey)
}

func TestFilterEmptyFacetsReturnAll(t *testing.T) {
	products := testCatalog()

	result := FilterAndSort(products, noFilters(), SortFeatured)

	assert.Len(t, result, len(products))
}

func TestFilterByCategoryAndBrand(t *testing.T) {
	filters := noFilters()
	filters.Categories = []string{"camisetas", "balones"}
	filters.Brands = []string{"DOZURTV"}

	result := FilterAndSort(testCatalog(), filters, SortFeatured)

	assert.ElementsMatch(t, []int64{2, 3, 4}, ids(result))
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	filters := noFilters()
	filters.PriceMinCents = 3999
	filters.PriceMaxCents = 8999

	result := FilterAndSort(testCatalog(), filters, SortPriceLow)

	assert.Equal(t, []int64{2, 3, 5}, ids(result))
}

func TestFilterNoMatchesIsEmptyNotNilError(t *testing.T) {
	filters := noFilters()
	filters.Categories = []string{"porterias"}

	result := FilterAndSort(testCatalog(), filters, SortFeatured)

	assert.Empty(t, result)
}

func TestSortPriceLowStableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Slug: "a", PriceCents: 12999},
		{ID: 2, Slug: "b", PriceCents: 3999},
		{ID: 3, Slug: "c", PriceCents: 3999},
	}

	result := FilterAndSort(products, noFilters(), SortPriceLow)

	// Равные цены сохраняют исходный порядок каталога
	assert.Equal(t, []int64{2, 3, 1}, ids(result))
}

func TestSortPriceHigh(t *testing.T) {
	result := FilterAndSort(testCatalog(), noFilters(), SortPriceHigh)

	assert.Equal(t, []int64{1, 5, 2, 3, 4}, ids(result))
}

func TestSortFeaturedIsStablePartition(t *testing.T) {
	result := FilterAndSort(testCatalog(), noFilters(), SortFeatured)

	// Featured первыми в порядке каталога, затем остальные в порядке каталога
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(result))
}

func TestSortFeaturedNoneFeaturedKeepsOriginalOrder(t *testing.T) {
	products := testCatalog()
	for i := range products {
		products[i].Featured = false
	}

	result := FilterAndSort(products, noFilters(), SortFeatured)

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(result))
}

func TestSortNameUsesSpanishCollation(t *testing.T) {
	result := FilterAndSort(testCatalog(), noFilters(), SortName)

	// "Ágil" сортируется как "Agil", а не после "Z"
	assert.Equal(t, int64(5), result[0].ID)
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	products := testCatalog()

	FilterAndSort(products, noFilters(), SortPriceLow)

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(products))
}

func TestRelatedMatchesCategoryOrBrand(t *testing.T) {
	products := testCatalog()
	gato := products[0] // botas / Nike

	result := Related(&gato, products, RelatedLimit)

	// Сам товар исключён; Munich подходит по категории
	assert.Equal(t, []int64{5}, ids(result))
}

func TestRelatedRespectsLimitAndOrder(t *testing.T) {
	products := testCatalog()
	camiseta := products[1] // camisetas / DOZURTV

	result := Related(&camiseta, products, 2)

	// Кандидаты в порядке каталога, обрезаны до лимита
	assert.Equal(t, []int64{3, 4}, ids(result))
}
