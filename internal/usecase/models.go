package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/pricing"
)

// CATALOG USECASE

// ListProductsReq — запрос видимого набора товаров с активными фасетами.
type ListProductsReq struct {
	Filters catalog.Filters
	Sort    catalog.SortKey
}

// ProductSummary — DTO карточки товара в выдаче каталога.
type ProductSummary struct {
	ID                 int64
	Name               string
	Slug               string
	Brand              string
	CategoryID         string
	PriceCents         int64
	OriginalPriceCents *int64
	ImageURL           string
	Featured           bool
	OnSale             bool
}

// ListProductsRes — ответ каталога: товары в порядке сортировки.
type ListProductsRes struct {
	Products []ProductSummary
	Total    int
}

// ProductDetail — полные данные товара для страницы продукта.
type ProductDetail struct {
	Product   domain.Product
	ImageURLs []string
}

// GetProductRes — товар плюс блок похожих товаров.
type GetProductRes struct {
	Product ProductDetail
	Related []ProductSummary
}

// FiltersRes — справочник панели фильтров: категории, бренды и потолок
// ценового слайдера.
type FiltersRes struct {
	Categories    []domain.Category
	Brands        []string
	MaxPriceCents int64
}

// CART USECASE

type AddItemReq struct {
	SessionID string
	Slug      string
	Size      string
	Color     string
	Quantity  int
}

type SetItemQuantityReq struct {
	SessionID string
	Key       domain.LineKey
	Quantity  int
}

type RemoveItemReq struct {
	SessionID string
	Key       domain.LineKey
}

type ApplyCouponReq struct {
	SessionID string
	Code      string
}

// CartRes — корзина и пересчитанные итоги. Итоги не кэшируются: это всегда
// чистая функция текущего состояния.
type CartRes struct {
	Cart                 *domain.Cart
	Totals               pricing.Totals
	FreeShippingGapCents int64
	// ImageURLs — presigned-обложки строк, индекс совпадает с Cart.Lines.
	ImageURLs []string
}

// CHECKOUT USECASE

type PlaceOrderReq struct {
	SessionID string
}

type PlaceOrderRes struct {
	OrderNumber string
	Totals      pricing.Totals
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderPlaced OutboxEventType = "order.placed"

// OutboxEvent — событие для публикации в Kafka через transactional outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewCartRes(cart *domain.Cart, imageURLs []string) *CartRes {
	return &CartRes{
		Cart:                 cart,
		Totals:               pricing.ComputeTotals(cart),
		FreeShippingGapCents: pricing.FreeShippingGapCents(cart),
		ImageURLs:            imageURLs,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewProductSummary(p *domain.Product, imageURL string) ProductSummary {
	return ProductSummary{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Brand:              p.Brand,
		CategoryID:         p.CategoryID,
		PriceCents:         p.PriceCents,
		OriginalPriceCents: p.OriginalPriceCents,
		ImageURL:           imageURL,
		Featured:           p.Featured,
		OnSale:             p.OnSale,
	}
}
