package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type PlaceOrderResponse struct {
	OrderNumber string         `json:"order_number"`
	Totals      TotalsResponse `json:"totals"`
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Фиксирует заказ по текущей корзине и очищает корзину сессии
//	@Tags			checkout
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		201				{object}	PlaceOrderResponse
//	@Failure		409				{object}	ErrorResponse	"Пустая корзина"
//	@Router			/checkout [post]
func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r)

	res, err := c.checkoutUsecase.PlaceOrder(r.Context(), &usecase.PlaceOrderReq{SessionID: sessionID})
	if err != nil {
		c.logger.Warnf("place order: %s", err.Error())
		WriteError(w, err)
		return
	}

	display := res.Totals.Display()
	WriteSuccess(w, http.StatusCreated, PlaceOrderResponse{
		OrderNumber: res.OrderNumber,
		Totals: TotalsResponse{
			Subtotal:   display.Subtotal,
			Discount:   display.Discount,
			Shipping:   display.Shipping,
			Tax:        display.Tax,
			GrandTotal: display.GrandTotal,
		},
	})
}
