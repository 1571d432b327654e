package domain

// LineKey — идентификатор строки корзины. Две строки с одинаковой тройкой
// (товар, размер, цвет) считаются одной и той же строкой.
type LineKey struct {
	ProductID int64
	Size      string
	Color     string
}

// CartLine описывает одну строку активного заказа.
// Quantity всегда находится в диапазоне [1, MaxQuantity]; строка с
// количеством меньше единицы не существует.
type CartLine struct {
	ProductID              int64
	Slug                   string
	Name                   string
	Brand                  string
	Size                   string
	Color                  string
	Quantity               int
	MaxQuantity            int // min(10, остаток на момент добавления)
	UnitPriceCents         int64
	OriginalUnitPriceCents *int64
	ImageKey               string
}

// Key возвращает идентификатор строки.
func (l *CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// AppliedCoupon описывает активный купон заказа.
// Одновременно активен не более чем один купон.
type AppliedCoupon struct {
	Code            string
	DiscountPercent int64
}

// Cart — состояние корзины одной сессии. Объект принадлежит исключительно
// своей сессии; все мутации сериализуются вызывающей стороной.
type Cart struct {
	Lines  []CartLine
	Coupon *AppliedCoupon
}

func NewCart() *Cart {
	return &Cart{}
}

// LineByKey возвращает индекс строки по идентификатору, либо -1.
func (c *Cart) LineByKey(key LineKey) int {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			return i
		}
	}

	return -1
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
