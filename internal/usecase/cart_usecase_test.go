package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/pricing"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartRepo хранит корзины в памяти, имитируя контракт хранилища сессий:
// отсутствующая сессия — пустая корзина.
type fakeCartRepo struct {
	carts map[string]*domain.Cart
	sets  int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	cart, ok := f.carts[sessionID]
	if !ok {
		return domain.NewCart(), nil
	}

	copied := *cart
	copied.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &copied, nil
}

func (f *fakeCartRepo) Set(_ context.Context, sessionID string, cart *domain.Cart) error {
	f.carts[sessionID] = cart
	f.sets++
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(f.carts, sessionID)
	return nil
}

type fakeProductSource struct {
	products map[string]*domain.Product
}

func (f *fakeProductSource) ProductBySlug(slug string) (*domain.Product, bool) {
	p, ok := f.products[slug]
	return p, ok
}

func newCartUCFixture() (*CartUseCase, *fakeCartRepo) {
	boots := &domain.Product{
		ID:         1,
		Name:       "Nike Street Gato Magos Edition",
		Slug:       "nike-street-gato-magos-edition",
		Brand:      "Nike",
		CategoryID: "botas",
		PriceCents: 12999,
		ImageKeys:  []string{"products/gato-1.jpg"},
		Colors:     []string{"Negro", "Morado"},
		Variants: []domain.Variant{
			{Size: "42", Stock: 8},
			{Size: "44", Stock: 0},
		},
	}
	ball := &domain.Product{
		ID:         2,
		Name:       "Balón Futsal Pro",
		Slug:       "balon-futsal-pro",
		Brand:      "DOZURTV",
		CategoryID: "balones",
		PriceCents: 2499,
		Variants:   []domain.Variant{{Size: "62", Stock: 30}},
	}

	repo := newFakeCartRepo()
	source := &fakeProductSource{products: map[string]*domain.Product{
		boots.Slug: boots,
		ball.Slug:  ball,
	}}

	return NewCartUC(repo, source, &fakeImageRepo{}, pricing.DefaultCoupons(), logger.NewSlogLogger()), repo
}

func TestCartUCGetCartUnknownSessionIsEmpty(t *testing.T) {
	uc, _ := newCartUCFixture()

	res, err := uc.GetCart(context.Background(), "fresh-session")

	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
	assert.Equal(t, "0.00", res.Totals.Display().Subtotal)
}

func TestCartUCAddItemStoresCart(t *testing.T) {
	uc, repo := newCartUCFixture()

	res, err := uc.AddItem(context.Background(), &AddItemReq{
		SessionID: "s1",
		Slug:      "nike-street-gato-magos-edition",
		Size:      "42",
		Color:     "Negro",
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, res.Cart.Lines, 1)
	assert.Equal(t, 2, res.Cart.Lines[0].Quantity)
	assert.Equal(t, 1, repo.sets)
	assert.Equal(t, "259.98", res.Totals.Display().Subtotal)
}

func TestCartUCAddItemColorlessProduct(t *testing.T) {
	uc, _ := newCartUCFixture()

	res, err := uc.AddItem(context.Background(), &AddItemReq{
		SessionID: "s1",
		Slug:      "balon-futsal-pro",
		Size:      "62",
		Quantity:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, "", res.Cart.Lines[0].Color)
}

func TestCartUCAddItemValidation(t *testing.T) {
	uc, repo := newCartUCFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, &AddItemReq{SessionID: "s1", Slug: "missing", Size: "42", Color: "Negro", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.AddItem(ctx, &AddItemReq{SessionID: "s1", Slug: "nike-street-gato-magos-edition", Color: "Negro", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrSizeRequired)

	_, err = uc.AddItem(ctx, &AddItemReq{SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "42", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrColorRequired)

	_, err = uc.AddItem(ctx, &AddItemReq{SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "42", Color: "Verde", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrUnknownColor)

	_, err = uc.AddItem(ctx, &AddItemReq{SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "44", Color: "Negro", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrOutOfStock)

	// Ни одна отклонённая мутация не была сохранена
	assert.Equal(t, 0, repo.sets)
}

func TestCartUCRejectedMutationLeavesStateUnchanged(t *testing.T) {
	uc, _ := newCartUCFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, &AddItemReq{
		SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "42", Color: "Negro", Quantity: 1,
	})
	require.NoError(t, err)

	_, err = uc.ApplyCoupon(ctx, &ApplyCouponReq{SessionID: "s1", Code: "MAGOS10"})
	require.NoError(t, err)

	// Второй купон отклоняется, активный купон и строки не меняются
	_, err = uc.ApplyCoupon(ctx, &ApplyCouponReq{SessionID: "s1", Code: "FUTSAL20"})
	assert.ErrorIs(t, err, e.ErrCouponAlreadyApplied)

	res, err := uc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, res.Cart.Coupon)
	assert.Equal(t, "MAGOS10", res.Cart.Coupon.Code)
}

func TestCartUCSetItemQuantityZeroRemoves(t *testing.T) {
	uc, _ := newCartUCFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, &AddItemReq{
		SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "42", Color: "Negro", Quantity: 2,
	})
	require.NoError(t, err)

	res, err := uc.SetItemQuantity(ctx, &SetItemQuantityReq{
		SessionID: "s1",
		Key:       domain.LineKey{ProductID: 1, Size: "42", Color: "Negro"},
		Quantity:  0,
	})

	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
}

func TestCartUCCouponSurvivesLineMutations(t *testing.T) {
	uc, _ := newCartUCFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, &AddItemReq{
		SessionID: "s1", Slug: "balon-futsal-pro", Size: "62", Quantity: 2,
	})
	require.NoError(t, err)

	_, err = uc.ApplyCoupon(ctx, &ApplyCouponReq{SessionID: "s1", Code: "futsal20"})
	require.NoError(t, err)

	res, err := uc.RemoveItem(ctx, &RemoveItemReq{
		SessionID: "s1",
		Key:       domain.LineKey{ProductID: 2, Size: "62"},
	})
	require.NoError(t, err)

	// Купон переживает опустошение корзины; скидка от нулевой суммы — ноль
	require.NotNil(t, res.Cart.Coupon)
	assert.Equal(t, "FUTSAL20", res.Cart.Coupon.Code)
	assert.Equal(t, "0.00", res.Totals.Display().Discount)
}

func TestCartUCLineImagesArePresigned(t *testing.T) {
	uc, _ := newCartUCFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, &AddItemReq{
		SessionID: "s1", Slug: "nike-street-gato-magos-edition", Size: "42", Color: "Negro", Quantity: 1,
	})
	require.NoError(t, err)

	res, err := uc.AddItem(ctx, &AddItemReq{
		SessionID: "s1", Slug: "balon-futsal-pro", Size: "62", Quantity: 1,
	})
	require.NoError(t, err)

	// Строка несёт развёрнутую ссылку, а не ключ объекта; товар без
	// изображений — пустой URL
	require.Len(t, res.ImageURLs, 2)
	assert.Equal(t, "https://cdn.test/products/gato-1.jpg", res.ImageURLs[0])
	assert.Equal(t, "", res.ImageURLs[1])

	got, err := uc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, res.ImageURLs, got.ImageURLs)
}

func TestCartUCFreeShippingGap(t *testing.T) {
	uc, _ := newCartUCFixture()

	res, err := uc.AddItem(context.Background(), &AddItemReq{
		SessionID: "s1", Slug: "balon-futsal-pro", Size: "62", Quantity: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2501), res.FreeShippingGapCents) // 50.00 − 24.99
}
