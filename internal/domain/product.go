package domain

// Variant описывает размерный вариант продукта с собственным остатком.
// Stock == 0 означает, что размер недоступен для покупки.
type Variant struct {
	Size  string
	Stock int
}

// Product описывает товар каталога. Каталог загружается один раз при старте
// процесса и после этого не изменяется.
type Product struct {
	ID                 int64
	Name               string
	Slug               string
	Description        string
	PriceCents         int64  // Цена хранится в центах
	OriginalPriceCents *int64 // Цена до скидки; присутствует только если товар уценён
	CategoryID         string
	Brand              string
	ImageKeys          []string // Ключи объектов в S3, в порядке отображения
	Variants           []Variant
	Colors             []string
	Featured           bool
	OnSale             bool
	Tags               []string
}

func NewProduct(id int64, name string, slug string, priceCents int64, categoryID string, brand string) *Product {
	return &Product{
		ID:         id,
		Name:       name,
		Slug:       slug,
		PriceCents: priceCents,
		CategoryID: categoryID,
		Brand:      brand,
	}
}

// VariantBySize возвращает вариант продукта по размеру.
func (p *Product) VariantBySize(size string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Size == size {
			return v, true
		}
	}

	return Variant{}, false
}
