package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CartConverter преобразует корзину между domain и Redis-моделью.
type CartConverter interface {
	ToRedisModel(entity *domain.Cart) *CartRedisModel
	ToEntity(model *CartRedisModel) *domain.Cart
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (CartConverterImpl) ToRedisModel(entity *domain.Cart) *CartRedisModel {
	lines := make([]CartLineRedisModel, 0, len(entity.Lines))
	for _, l := range entity.Lines {
		lines = append(lines, CartLineRedisModel{
			ProductID:              l.ProductID,
			Slug:                   l.Slug,
			Name:                   l.Name,
			Brand:                  l.Brand,
			Size:                   l.Size,
			Color:                  l.Color,
			Quantity:               l.Quantity,
			MaxQuantity:            l.MaxQuantity,
			UnitPriceCents:         l.UnitPriceCents,
			OriginalUnitPriceCents: l.OriginalUnitPriceCents,
			ImageKey:               l.ImageKey,
		})
	}

	model := &CartRedisModel{Lines: lines}
	if entity.Coupon != nil {
		model.Coupon = &CouponRedisModel{
			Code:            entity.Coupon.Code,
			DiscountPercent: entity.Coupon.DiscountPercent,
		}
	}

	return model
}

func (CartConverterImpl) ToEntity(model *CartRedisModel) *domain.Cart {
	cart := domain.NewCart()
	for _, l := range model.Lines {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:              l.ProductID,
			Slug:                   l.Slug,
			Name:                   l.Name,
			Brand:                  l.Brand,
			Size:                   l.Size,
			Color:                  l.Color,
			Quantity:               l.Quantity,
			MaxQuantity:            l.MaxQuantity,
			UnitPriceCents:         l.UnitPriceCents,
			OriginalUnitPriceCents: l.OriginalUnitPriceCents,
			ImageKey:               l.ImageKey,
		})
	}

	if model.Coupon != nil {
		cart.Coupon = &domain.AppliedCoupon{
			Code:            model.Coupon.Code,
			DiscountPercent: model.Coupon.DiscountPercent,
		}
	}

	return cart
}
