package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	products []domain.Product
}

func (f *fakeCatalogRepo) ListAll(_ context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogRepo) ListCategories(_ context.Context) ([]domain.Category, error) {
	return []domain.Category{
		{ID: "botas", Name: "Botas de Fútbol Sala"},
		{ID: "camisetas", Name: "Camisetas"},
	}, nil
}

// fakeImageRepo разворачивает ключ в детерминированный URL.
type fakeImageRepo struct{}

func (f *fakeImageRepo) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

func newCatalogUCFixture(t *testing.T) *CatalogUseCase {
	t.Helper()

	repo := &fakeCatalogRepo{products: []domain.Product{
		{ID: 1, Name: "Nike Street Gato", Slug: "nike-street-gato", CategoryID: "botas", Brand: "Nike",
			PriceCents: 12999, ImageKeys: []string{"products/gato-1.jpg", "products/gato-2.jpg"}},
		{ID: 2, Name: "Camiseta Pro", Slug: "camiseta-pro", CategoryID: "camisetas", Brand: "DOZURTV",
			PriceCents: 3999, Featured: true, ImageKeys: []string{"products/camiseta-1.jpg"}},
		{ID: 3, Name: "Munich G-3", Slug: "munich-g3", CategoryID: "botas", Brand: "Munich",
			PriceCents: 8999},
	}}

	uc := NewCatalogUC(repo, &fakeImageRepo{}, logger.NewSlogLogger())
	require.NoError(t, uc.Load(context.Background()))

	return uc
}

func TestCatalogUCListProducts(t *testing.T) {
	uc := newCatalogUCFixture(t)

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{
		Filters: catalog.Filters{PriceMaxCents: math.MaxInt64},
		Sort:    catalog.SortFeatured,
	})

	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	// Featured первым, карточка несёт presigned-обложку
	assert.Equal(t, "camiseta-pro", res.Products[0].Slug)
	assert.Equal(t, "https://cdn.test/products/camiseta-1.jpg", res.Products[0].ImageURL)
	// Товар без изображений отдаёт пустой URL, а не ошибку
	assert.Equal(t, "", res.Products[2].ImageURL)
}

func TestCatalogUCGetProduct(t *testing.T) {
	uc := newCatalogUCFixture(t)

	res, err := uc.GetProduct(context.Background(), "nike-street-gato")

	require.NoError(t, err)
	assert.Equal(t, "Nike Street Gato", res.Product.Product.Name)
	assert.Equal(t, []string{
		"https://cdn.test/products/gato-1.jpg",
		"https://cdn.test/products/gato-2.jpg",
	}, res.Product.ImageURLs)

	// Похожие: категория botas совпадает у Munich, сам товар исключён
	require.Len(t, res.Related, 1)
	assert.Equal(t, "munich-g3", res.Related[0].Slug)
}

func TestCatalogUCGetProductUnknownSlug(t *testing.T) {
	uc := newCatalogUCFixture(t)

	_, err := uc.GetProduct(context.Background(), "ghost")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCatalogUCMaxPriceCents(t *testing.T) {
	uc := newCatalogUCFixture(t)

	assert.Equal(t, int64(12999), uc.MaxPriceCents())
}

func TestCatalogUCGetFilters(t *testing.T) {
	uc := newCatalogUCFixture(t)

	res, err := uc.GetFilters(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: "botas", Name: "Botas de Fútbol Sala"},
		{ID: "camisetas", Name: "Camisetas"},
	}, res.Categories)
	// Бренды без дублей, в порядке каталога
	assert.Equal(t, []string{"Nike", "DOZURTV", "Munich"}, res.Brands)
	assert.Equal(t, int64(12999), res.MaxPriceCents)
}
