package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type CatalogRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CartRepository хранит состояние корзины сессии. Get для неизвестной
// сессии возвращает пустую корзину, не ошибку.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Set(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}
