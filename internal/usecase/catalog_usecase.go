package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CatalogUseCase обслуживает запросы каталога поверх неизменяемого снимка,
// загруженного один раз при старте приложения. Движок фильтрации и
// сортировки (internal/catalog) работает только с этим снимком.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	imageRepo   ImageRepository
	logger      logger.Logger

	// Снимок неизменяем после Load; индексы только для чтения.
	products   []domain.Product
	categories []domain.Category
	bySlug     map[string]int
}

func NewCatalogUC(catalogRepo CatalogRepository, imageRepo ImageRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		imageRepo:   imageRepo,
		logger:      logger,
		bySlug:      make(map[string]int),
	}
}

// Load загружает каталог из хранилища в память. Вызывается один раз при
// старте, до запуска HTTP-сервера.
func (c *CatalogUseCase) Load(ctx context.Context) error {
	products, err := c.catalogRepo.ListAll(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	categories, err := c.catalogRepo.ListCategories(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	c.products = products
	c.categories = categories
	for i := range products {
		c.bySlug[products[i].Slug] = i
	}

	c.logger.Infof("catalog snapshot loaded: %d products, %d categories", len(products), len(categories))
	return nil
}

// ListProducts возвращает видимый набор товаров: фильтрация и сортировка
// выполняются движком каталога, изображение карточки — первый ключ товара,
// развёрнутый в presigned URL. Пустой результат — корректный исход.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	ordered := catalog.FilterAndSort(c.products, req.Filters, req.Sort)

	summaries := make([]ProductSummary, 0, len(ordered))
	for i := range ordered {
		url, err := c.coverURL(ctx, &ordered[i])
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		summaries = append(summaries, NewProductSummary(&ordered[i], url))
	}

	return &ListProductsRes{Products: summaries, Total: len(summaries)}, nil
}

// GetProduct возвращает товар по slug вместе с блоком похожих товаров.
func (c *CatalogUseCase) GetProduct(ctx context.Context, slug string) (*GetProductRes, error) {
	const op = "CatalogUseCase.GetProduct"

	product, ok := c.ProductBySlug(slug)
	if !ok {
		return nil, e.ErrProductNotFound
	}

	urls := make([]string, 0, len(product.ImageKeys))
	for _, key := range product.ImageKeys {
		url, err := c.imageRepo.PresignedURL(ctx, key)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		urls = append(urls, url)
	}

	related := catalog.Related(product, c.products, catalog.RelatedLimit)
	relatedSummaries := make([]ProductSummary, 0, len(related))
	for i := range related {
		url, err := c.coverURL(ctx, &related[i])
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		relatedSummaries = append(relatedSummaries, NewProductSummary(&related[i], url))
	}

	return &GetProductRes{
		Product: ProductDetail{Product: *product, ImageURLs: urls},
		Related: relatedSummaries,
	}, nil
}

// ProductBySlug отдаёт товар из снимка. Используется корзиной при добавлении.
func (c *CatalogUseCase) ProductBySlug(slug string) (*domain.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return nil, false
	}

	return &c.products[i], true
}

// MaxPriceCents возвращает максимальную цену каталога — верхнюю границу
// ценового слайдера витрины.
func (c *CatalogUseCase) MaxPriceCents() int64 {
	var max int64
	for i := range c.products {
		if c.products[i].PriceCents > max {
			max = c.products[i].PriceCents
		}
	}

	return max
}

// GetFilters возвращает справочник панели фильтров витрины: список
// категорий, бренды в порядке каталога и потолок ценового слайдера.
func (c *CatalogUseCase) GetFilters(_ context.Context) (*FiltersRes, error) {
	seen := make(map[string]struct{}, len(c.products))
	brands := make([]string, 0, len(c.products))
	for i := range c.products {
		brand := c.products[i].Brand
		if _, ok := seen[brand]; ok {
			continue
		}
		seen[brand] = struct{}{}
		brands = append(brands, brand)
	}

	return &FiltersRes{
		Categories:    c.categories,
		Brands:        brands,
		MaxPriceCents: c.MaxPriceCents(),
	}, nil
}

func (c *CatalogUseCase) coverURL(ctx context.Context, p *domain.Product) (string, error) {
	if len(p.ImageKeys) == 0 {
		return "", nil
	}

	return c.imageRepo.PresignedURL(ctx, p.ImageKeys[0])
}
