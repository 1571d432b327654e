package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToEntity(model *ProductModel, variants []VariantModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (ProductConverterImpl) ToEntity(model *ProductModel, variants []VariantModel) *domain.Product {
	vs := make([]domain.Variant, 0, len(variants))
	for _, v := range variants {
		vs = append(vs, domain.Variant{Size: v.Size, Stock: v.Stock})
	}

	return &domain.Product{
		ID:                 model.ID,
		Name:               model.Name,
		Slug:               model.Slug,
		Description:        model.Description,
		PriceCents:         model.PriceCents,
		OriginalPriceCents: model.OriginalPriceCents,
		CategoryID:         model.CategoryID,
		Brand:              model.Brand,
		ImageKeys:          model.ImageKeys,
		Variants:           vs,
		Colors:             model.Colors,
		Featured:           model.Featured,
		OnSale:             model.OnSale,
		Tags:               model.Tags,
	}
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	return domain.NewCategory(model.ID, model.Name)
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
