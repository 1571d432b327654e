package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type AddItemRequest struct {
	Slug     string `json:"slug"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type CartLineResponse struct {
	ProductID         int64   `json:"product_id"`
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	Brand             string  `json:"brand"`
	Size              string  `json:"size"`
	Color             string  `json:"color,omitempty"`
	Quantity          int     `json:"quantity"`
	MaxQuantity       int     `json:"max_quantity"`
	UnitPrice         string  `json:"unit_price"`
	OriginalUnitPrice *string `json:"original_unit_price,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
}

type CouponResponse struct {
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discount_percent"`
}

type TotalsResponse struct {
	Subtotal   string `json:"subtotal"`
	Discount   string `json:"discount"`
	Shipping   string `json:"shipping"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grand_total"`
}

type CartResponse struct {
	Lines           []CartLineResponse `json:"lines"`
	Coupon          *CouponResponse    `json:"coupon,omitempty"`
	Totals          TotalsResponse     `json:"totals"`
	FreeShippingGap *string            `json:"free_shipping_gap,omitempty"`
}

// getCart
//
//	@Summary		Текущая корзина
//	@Description	Возвращает корзину сессии с пересчитанными итогами
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	CartResponse
//	@Router			/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	res, err := c.cartUsecase.GetCart(r.Context(), sessionID)
	if err != nil {
		c.logger.Warnf("get cart: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// addItem
//
//	@Summary		Добавление позиции
//	@Description	Добавляет товар в корзину; повторное добавление суммирует количество с учетом лимита
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Идентификатор сессии"
//	@Param			request			body		AddItemRequest	true	"Позиция"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse	"Нет в наличии"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.Slug == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	res, err := c.cartUsecase.AddItem(r.Context(), &usecase.AddItemReq{
		SessionID: sessionID,
		Slug:      req.Slug,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		c.logger.Warnf("add item %q: %s", req.Slug, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// setItemQuantity
//
//	@Summary		Изменение количества
//	@Description	Выставляет количество позиции; значение меньше единицы удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Идентификатор сессии"
//	@Param			productID		path		int					true	"ID товара"
//	@Param			size			path		string				true	"Размер"
//	@Param			color			path		string				true	"Цвет ('-' для товара без цвета)"
//	@Param			request			body		SetQuantityRequest	true	"Новое количество"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/cart/items/{productID}/{size}/{color} [put]
func (c *CartHandler) setItemQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	key, err := parseLineKey(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := c.cartUsecase.SetItemQuantity(r.Context(), &usecase.SetItemQuantityReq{
		SessionID: sessionID,
		Key:       key,
		Quantity:  req.Quantity,
	})
	if err != nil {
		c.logger.Warnf("set quantity: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// removeItem
//
//	@Summary		Удаление позиции
//	@Description	Удаляет позицию из корзины; отсутствующая позиция не считается ошибкой
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Param			productID		path		int		true	"ID товара"
//	@Param			size			path		string	true	"Размер"
//	@Param			color			path		string	true	"Цвет ('-' для товара без цвета)"
//	@Success		200				{object}	CartResponse
//	@Router			/cart/items/{productID}/{size}/{color} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	key, err := parseLineKey(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.RemoveItem(r.Context(), &usecase.RemoveItemReq{SessionID: sessionID, Key: key})
	if err != nil {
		c.logger.Warnf("remove item: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// applyCoupon
//
//	@Summary		Применение купона
//	@Description	Применяет купон к корзине; одновременно активен не более чем один купон
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Идентификатор сессии"
//	@Param			request			body		ApplyCouponRequest	true	"Код купона"
//	@Success		200				{object}	CartResponse
//	@Failure		409				{object}	ErrorResponse	"Купон уже применен"
//	@Failure		422				{object}	ErrorResponse	"Неизвестный код"
//	@Router			/cart/coupon [post]
func (c *CartHandler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	var req ApplyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := c.cartUsecase.ApplyCoupon(r.Context(), &usecase.ApplyCouponReq{SessionID: sessionID, Code: req.Code})
	if err != nil {
		c.logger.Warnf("apply coupon %q: %s", req.Code, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// removeCoupon
//
//	@Summary		Снятие купона
//	@Description	Убирает активный купон; без купона вызов безвреден
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	CartResponse
//	@Router			/cart/coupon [delete]
func (c *CartHandler) removeCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	res, err := c.cartUsecase.RemoveCoupon(r.Context(), sessionID)
	if err != nil {
		c.logger.Warnf("remove coupon: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// parseLineKey собирает ключ позиции из path-параметров. Сегмент цвета "-"
// означает товар без цвета.
func parseLineKey(r *http.Request) (domain.LineKey, error) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return domain.LineKey{}, e.ErrStatusBadRequest
	}

	color := chi.URLParam(r, "color")
	if color == "-" {
		color = ""
	}

	return domain.LineKey{
		ProductID: productID,
		Size:      chi.URLParam(r, "size"),
		Color:     color,
	}, nil
}

func newCartResponse(res *usecase.CartRes) CartResponse {
	lines := make([]CartLineResponse, 0, len(res.Cart.Lines))
	for i, line := range res.Cart.Lines {
		var imageURL string
		if i < len(res.ImageURLs) {
			imageURL = res.ImageURLs[i]
		}

		lines = append(lines, CartLineResponse{
			ProductID:         line.ProductID,
			Slug:              line.Slug,
			Name:              line.Name,
			Brand:             line.Brand,
			Size:              line.Size,
			Color:             line.Color,
			Quantity:          line.Quantity,
			MaxQuantity:       line.MaxQuantity,
			UnitPrice:         formatCents(line.UnitPriceCents),
			OriginalUnitPrice: formatOptionalCents(line.OriginalUnitPriceCents),
			ImageURL:          imageURL,
		})
	}

	var coupon *CouponResponse
	if res.Cart.Coupon != nil {
		coupon = &CouponResponse{
			Code:            res.Cart.Coupon.Code,
			DiscountPercent: res.Cart.Coupon.DiscountPercent,
		}
	}

	display := res.Totals.Display()
	response := CartResponse{
		Lines:  lines,
		Coupon: coupon,
		Totals: TotalsResponse{
			Subtotal:   display.Subtotal,
			Discount:   display.Discount,
			Shipping:   display.Shipping,
			Tax:        display.Tax,
			GrandTotal: display.GrandTotal,
		},
	}

	if res.FreeShippingGapCents > 0 {
		gap := formatCents(res.FreeShippingGapCents)
		response.FreeShippingGap = &gap
	}

	return response
}
