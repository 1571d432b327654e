package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type ProductSummaryResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"original_price,omitempty"`
	ImageURL      string  `json:"image_url"`
	Featured      bool    `json:"featured"`
	OnSale        bool    `json:"on_sale"`
}

type ListProductsResponse struct {
	Products []ProductSummaryResponse `json:"products"`
	Total    int                      `json:"total"`
}

type VariantResponse struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type ProductDetailResponse struct {
	ID            int64                    `json:"id"`
	Name          string                   `json:"name"`
	Slug          string                   `json:"slug"`
	Description   string                   `json:"description"`
	Brand         string                   `json:"brand"`
	Category      string                   `json:"category"`
	Price         string                   `json:"price"`
	OriginalPrice *string                  `json:"original_price,omitempty"`
	Images        []string                 `json:"images"`
	Variants      []VariantResponse        `json:"variants"`
	Colors        []string                 `json:"colors"`
	Tags          []string                 `json:"tags"`
	Featured      bool                     `json:"featured"`
	OnSale        bool                     `json:"on_sale"`
	Related       []ProductSummaryResponse `json:"related"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FiltersResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Brands     []string           `json:"brands"`
	MaxPrice   string             `json:"max_price"`
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Возвращает видимый набор товаров с учетом фасетов и сортировки
//	@Tags			catalog
//	@Produce		json
//	@Param			categories	query		string	false	"Категории через запятую"
//	@Param			brands		query		string	false	"Бренды через запятую"
//	@Param			price_min	query		string	false	"Нижняя граница цены"
//	@Param			price_max	query		string	false	"Верхняя граница цены"
//	@Param			sort		query		string	false	"featured | price-low | price-high | name"
//	@Success		200			{object}	ListProductsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, "invalid catalog filters", r.URL.RawQuery)
		WriteError(w, err)
		return
	}

	sort, err := catalog.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, "invalid sort key", r.URL.Query().Get("sort"))
		WriteError(w, err)
		return
	}

	res, err := c.catalogUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{Filters: filters, Sort: sort})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newListProductsResponse(res))
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар по slug вместе с блоком похожих товаров
//	@Tags			catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Слаг товара"
//	@Success		200		{object}	ProductDetailResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{slug} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	res, err := c.catalogUsecase.GetProduct(r.Context(), slug)
	if err != nil {
		c.logger.Warnf("get product %q: %s", slug, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductDetailResponse(res))
}

// getFilters
//
//	@Summary		Фасеты каталога
//	@Description	Возвращает категории, бренды и максимальную цену каталога для панели фильтров
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	FiltersResponse
//	@Router			/filters [get]
func (c *CatalogHandler) getFilters(w http.ResponseWriter, r *http.Request) {
	res, err := c.catalogUsecase.GetFilters(r.Context())
	if err != nil {
		c.logger.Warnf("get filters: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newFiltersResponse(res))
}

func newProductSummaryResponse(s usecase.ProductSummary) ProductSummaryResponse {
	return ProductSummaryResponse{
		ID:            s.ID,
		Name:          s.Name,
		Slug:          s.Slug,
		Brand:         s.Brand,
		Category:      s.CategoryID,
		Price:         formatCents(s.PriceCents),
		OriginalPrice: formatOptionalCents(s.OriginalPriceCents),
		ImageURL:      s.ImageURL,
		Featured:      s.Featured,
		OnSale:        s.OnSale,
	}
}

func newListProductsResponse(res *usecase.ListProductsRes) ListProductsResponse {
	products := make([]ProductSummaryResponse, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, newProductSummaryResponse(p))
	}

	return ListProductsResponse{Products: products, Total: res.Total}
}

func newProductDetailResponse(res *usecase.GetProductRes) ProductDetailResponse {
	p := res.Product.Product

	variants := make([]VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantResponse{Size: v.Size, Stock: v.Stock})
	}

	related := make([]ProductSummaryResponse, 0, len(res.Related))
	for _, s := range res.Related {
		related = append(related, newProductSummaryResponse(s))
	}

	return ProductDetailResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Brand:         p.Brand,
		Category:      p.CategoryID,
		Price:         formatCents(p.PriceCents),
		OriginalPrice: formatOptionalCents(p.OriginalPriceCents),
		Images:        res.Product.ImageURLs,
		Variants:      variants,
		Colors:        p.Colors,
		Tags:          p.Tags,
		Featured:      p.Featured,
		OnSale:        p.OnSale,
		Related:       related,
	}
}

func newFiltersResponse(res *usecase.FiltersRes) FiltersResponse {
	categories := make([]CategoryResponse, 0, len(res.Categories))
	for _, c := range res.Categories {
		categories = append(categories, CategoryResponse{ID: c.ID, Name: c.Name})
	}

	return FiltersResponse{
		Categories: categories,
		Brands:     res.Brands,
		MaxPrice:   formatCents(res.MaxPriceCents),
	}
}

func formatOptionalCents(cents *int64) *string {
	if cents == nil {
		return nil
	}

	formatted := formatCents(*cents)
	return &formatted
}
