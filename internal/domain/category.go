package domain

// Category описывает категорию товаров витрины.
// Набор категорий фиксирован и задаётся сидом миграций.
type Category struct {
	ID   string // URL-safe идентификатор, например "botas"
	Name string
}

func NewCategory(id string, name string) *Category {
	return &Category{
		ID:   id,
		Name: name,
	}
}
