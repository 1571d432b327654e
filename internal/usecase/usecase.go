package usecase

import "context"

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProduct(ctx context.Context, slug string) (*GetProductRes, error)
	GetFilters(ctx context.Context) (*FiltersRes, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartRes, error)
	AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error)
	SetItemQuantity(ctx context.Context, req *SetItemQuantityReq) (*CartRes, error)
	RemoveItem(ctx context.Context, req *RemoveItemReq) (*CartRes, error)
	ApplyCoupon(ctx context.Context, req *ApplyCouponReq) (*CartRes, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*CartRes, error)
}

type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
}
