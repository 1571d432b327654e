package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/pricing"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// ProductSource отдаёт товары из снимка каталога. Реализуется CatalogUseCase.
type ProductSource interface {
	ProductBySlug(slug string) (*domain.Product, bool)
}

// CartUseCase оборачивает чистые переходы движка ценообразования циклом
// load → mutate → store поверх хранилища сессий. Итоги пересчитываются
// после каждой мутации; отклонённая мутация не сохраняется.
type CartUseCase struct {
	cartRepo  CartRepository
	products  ProductSource
	imageRepo ImageRepository
	coupons   pricing.CouponTable
	logger    logger.Logger
}

func NewCartUC(cartRepo CartRepository, products ProductSource, imageRepo ImageRepository, coupons pricing.CouponTable, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:  cartRepo,
		products:  products,
		imageRepo: imageRepo,
		coupons:   coupons,
		logger:    logger,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	urls, err := c.lineImageURLs(ctx, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, urls), nil
}

// AddItem добавляет товар в корзину сессии. Нулевой остаток выбранного
// размера отклоняется сигналом ErrOutOfStock; состояние не меняется.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	product, ok := c.products.ProductBySlug(req.Slug)
	if !ok {
		return nil, e.ErrProductNotFound
	}

	if req.Size == "" {
		return nil, e.ErrSizeRequired
	}

	color := req.Color
	if len(product.Colors) == 0 {
		// У товара нет цветов — строка идентифицируется без цвета
		color = ""
	} else {
		if color == "" {
			return nil, e.ErrColorRequired
		}
		if !containsColor(product.Colors, color) {
			return nil, e.ErrUnknownColor
		}
	}

	return c.mutate(ctx, op, req.SessionID, func(cart *domain.Cart) error {
		return pricing.AddLine(cart, product, req.Size, color, req.Quantity)
	})
}

// SetItemQuantity устанавливает количество в строке; меньше единицы —
// эквивалент удаления, превышение потолка молча ограничивается.
func (c *CartUseCase) SetItemQuantity(ctx context.Context, req *SetItemQuantityReq) (*CartRes, error) {
	const op = "CartUseCase.SetItemQuantity"

	return c.mutate(ctx, op, req.SessionID, func(cart *domain.Cart) error {
		pricing.SetQuantity(cart, req.Key, req.Quantity)
		return nil
	})
}

func (c *CartUseCase) RemoveItem(ctx context.Context, req *RemoveItemReq) (*CartRes, error) {
	const op = "CartUseCase.RemoveItem"

	return c.mutate(ctx, op, req.SessionID, func(cart *domain.Cart) error {
		pricing.RemoveLine(cart, req.Key)
		return nil
	})
}

func (c *CartUseCase) ApplyCoupon(ctx context.Context, req *ApplyCouponReq) (*CartRes, error) {
	const op = "CartUseCase.ApplyCoupon"

	return c.mutate(ctx, op, req.SessionID, func(cart *domain.Cart) error {
		return pricing.ApplyCoupon(cart, c.coupons, req.Code)
	})
}

func (c *CartUseCase) RemoveCoupon(ctx context.Context, sessionID string) (*CartRes, error) {
	const op = "CartUseCase.RemoveCoupon"

	return c.mutate(ctx, op, sessionID, func(cart *domain.Cart) error {
		pricing.RemoveCoupon(cart)
		return nil
	})
}

// mutate выполняет один цикл load → transition → store. Мутация «всё или
// ничего»: при ошибке перехода корзина не сохраняется и состояние сессии
// остаётся прежним.
func (c *CartUseCase) mutate(ctx context.Context, op string, sessionID string, transition func(*domain.Cart) error) (*CartRes, error) {
	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := transition(cart); err != nil {
		return nil, err
	}

	if err := c.cartRepo.Set(ctx, sessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	urls, err := c.lineImageURLs(ctx, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, urls), nil
}

// lineImageURLs разворачивает ключи обложек строк в presigned-ссылки,
// как это делает каталог для карточек. Строка без изображения отдаёт
// пустой URL.
func (c *CartUseCase) lineImageURLs(ctx context.Context, cart *domain.Cart) ([]string, error) {
	urls := make([]string, 0, len(cart.Lines))
	for i := range cart.Lines {
		if cart.Lines[i].ImageKey == "" {
			urls = append(urls, "")
			continue
		}

		url, err := c.imageRepo.PresignedURL(ctx, cart.Lines[i].ImageKey)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func containsColor(colors []string, color string) bool {
	for _, c := range colors {
		if c == color {
			return true
		}
	}

	return false
}
