package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит состояние корзин сессий в Redis. В отличие от кэша,
// Redis здесь — основное хранилище корзины, поэтому ошибки чтения и записи
// возвращаются вызывающему, а не подавляются.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает корзину сессии. Неизвестная сессия — пустая корзина, не ошибка.
func (c *CartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.NewCart(), nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		// Повреждённая запись непригодна; сессия начинает с пустой корзины
		c.logger.Warnf("corrupted cart record, resetting, session: %s: %v", sessionID, err)
		if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return domain.NewCart(), nil
	}

	return c.conv.ToEntity(&model), nil
}

// Set сохраняет корзину сессии с TTL из конфигурации.
func (c *CartRepo) Set(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(c.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет корзину сессии.
func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины сессии.
func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
