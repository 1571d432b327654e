// Package catalog реализует чистые запросы к каталогу витрины:
// многофасетную фильтрацию, сортировку и подбор похожих товаров.
// Пакет не имеет побочных эффектов и никогда не изменяет входной срез.
package catalog

import (
	"sort"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey задаёт порядок выдачи каталога.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// ParseSortKey валидирует ключ сортировки; пустое значение трактуется
// как SortFeatured — так ведёт себя витрина по умолчанию.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortName:
		return SortKey(s), nil
	case "":
		return SortFeatured, nil
	default:
		return "", e.ErrInvalidSortKey
	}
}

// Filters — активные фасеты каталога. Пустой набор категорий или брендов
// означает отсутствие ограничения по этому фасету. Границы цены включительны.
type Filters struct {
	Categories    []string
	Brands        []string
	PriceMinCents int64
	PriceMaxCents int64
}

// Matches сообщает, проходит ли товар фильтр.
func (f Filters) Matches(p *domain.Product) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, p.CategoryID) {
		return false
	}

	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}

	return p.PriceCents >= f.PriceMinCents && p.PriceCents <= f.PriceMaxCents
}

// RelatedLimit — размер блока «похожие товары» на странице продукта.
const RelatedLimit = 4

// Витрина испаноязычная, имена товаров сравниваются по испанским правилам.
var nameCollator = collate.New(language.Spanish)

// FilterAndSort возвращает новый упорядоченный срез товаров, прошедших
// фильтр. Все сортировки стабильны: равные элементы сохраняют исходный
// порядок каталога. Пустой результат — корректный исход, не ошибка.
func FilterAndSort(products []domain.Product, filters Filters, key SortKey) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for i := range products {
		if filters.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceCents < filtered[j].PriceCents
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceCents > filtered[j].PriceCents
		})
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return nameCollator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case SortFeatured:
		fallthrough
	default:
		// Стабильное разбиение: featured-товары первыми, порядок внутри групп сохраняется
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Featured && !filtered[j].Featured
		})
	}

	return filtered
}

// Related подбирает до limit похожих товаров: slug отличается от исходного,
// а категория или бренд совпадает. Кандидаты берутся в порядке каталога,
// без дополнительного ранжирования.
func Related(product *domain.Product, products []domain.Product, limit int) []domain.Product {
	related := make([]domain.Product, 0, limit)
	for i := range products {
		if len(related) == limit {
			break
		}

		p := &products[i]
		if p.Slug == product.Slug {
			continue
		}

		if p.CategoryID == product.CategoryID || p.Brand == product.Brand {
			related = append(related, *p)
		}
	}

	return related
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}
