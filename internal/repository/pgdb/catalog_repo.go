package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CatalogRepo реализует репозиторий каталога поверх PostgreSQL.
// Каталог читается целиком один раз при старте приложения.
type CatalogRepo struct {
	pool    *pgxpool.Pool
	conv    converter.ProductConverter
	catConv converter.CategoryConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.ProductConverter, catConv converter.CategoryConverter) *CatalogRepo {
	return &CatalogRepo{
		pool:    pool,
		conv:    conv,
		catConv: catConv,
	}
}

// ListAll возвращает все товары каталога с вариантами, в порядке каталога (id).
func (c *CatalogRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, slug, description, price, original_price,
		       category_id, brand, image_keys, colors, tags, featured, on_sale
		FROM products
		ORDER BY id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []converter.ProductModel
	for rows.Next() {
		var m converter.ProductModel
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Slug, &m.Description, &m.PriceCents, &m.OriginalPriceCents,
			&m.CategoryID, &m.Brand, &m.ImageKeys, &m.Colors, &m.Tags, &m.Featured, &m.OnSale,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	variants, err := c.listVariants(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(models))
	for i := range models {
		products = append(products, *c.conv.ToEntity(&models[i], variants[models[i].ID]))
	}

	return products, nil
}

// ListCategories возвращает фиксированный набор категорий витрины.
func (c *CatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var m converter.CategoryModel
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.catConv.ToEntity(&m))
	}

	return result, rows.Err()
}

// listVariants группирует размерные варианты по товару.
func (c *CatalogRepo) listVariants(ctx context.Context) (map[int64][]converter.VariantModel, error) {
	query := `
		SELECT product_id, size, stock
		FROM product_variants
		ORDER BY product_id, id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]converter.VariantModel)
	for rows.Next() {
		var m converter.VariantModel
		if err := rows.Scan(&m.ProductID, &m.Size, &m.Stock); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[m.ProductID] = append(result[m.ProductID], m)
	}

	return result, rows.Err()
}
