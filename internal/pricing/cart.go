// Package pricing реализует движок ценообразования заказа: мутации строк
// корзины, применение купонов и расчёт итогов. Все операции — чистые
// преобразования состояния сессии без ввода-вывода; худший исход любой
// операции — «мутация отклонена, состояние не изменилось».
package pricing

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// MaxQuantityPerLine — мягкий потолок количества в одной строке корзины.
const MaxQuantityPerLine = 10

// AddLine добавляет товар в корзину. Строка с той же тройкой
// (товар, размер, цвет) уже существует — её количество увеличивается с
// учётом потолка; иначе создаётся новая строка. Размер с нулевым остатком
// отклоняется сигналом ErrOutOfStock.
func AddLine(cart *domain.Cart, product *domain.Product, size string, color string, quantity int) error {
	if quantity < 1 {
		return e.ErrInvalidQuantity
	}

	variant, ok := product.VariantBySize(size)
	if !ok {
		return e.ErrUnknownSize
	}

	if variant.Stock == 0 {
		return e.ErrOutOfStock
	}

	maxQty := variant.Stock
	if maxQty > MaxQuantityPerLine {
		maxQty = MaxQuantityPerLine
	}

	key := domain.LineKey{ProductID: product.ID, Size: size, Color: color}
	if i := cart.LineByKey(key); i >= 0 {
		cart.Lines[i].Quantity = clamp(cart.Lines[i].Quantity+quantity, cart.Lines[i].MaxQuantity)
		return nil
	}

	var image string
	if len(product.ImageKeys) > 0 {
		image = product.ImageKeys[0]
	}

	cart.Lines = append(cart.Lines, domain.CartLine{
		ProductID:              product.ID,
		Slug:                   product.Slug,
		Name:                   product.Name,
		Brand:                  product.Brand,
		Size:                   size,
		Color:                  color,
		Quantity:               clamp(quantity, maxQty),
		MaxQuantity:            maxQty,
		UnitPriceCents:         product.PriceCents,
		OriginalUnitPriceCents: product.OriginalPriceCents,
		ImageKey:               image,
	})

	return nil
}

// SetQuantity устанавливает количество в строке. Количество меньше единицы
// эквивалентно удалению строки; превышение потолка молча ограничивается,
// чтобы UI всегда оставался в валидном состоянии. Отсутствующая строка — no-op.
func SetQuantity(cart *domain.Cart, key domain.LineKey, quantity int) {
	if quantity < 1 {
		RemoveLine(cart, key)
		return
	}

	if i := cart.LineByKey(key); i >= 0 {
		cart.Lines[i].Quantity = clamp(quantity, cart.Lines[i].MaxQuantity)
	}
}

// RemoveLine удаляет строку, если она существует; иначе no-op.
func RemoveLine(cart *domain.Cart, key domain.LineKey) {
	for i := range cart.Lines {
		if cart.Lines[i].Key() == key {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return
		}
	}
}

func clamp(quantity int, max int) int {
	if quantity > max {
		return max
	}

	return quantity
}
