package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/catalog"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidPriceRange):
		return http.StatusBadRequest, e.ErrInvalidPriceRange.Error()
	case errors.Is(err, e.ErrInvalidSortKey):
		return http.StatusBadRequest, e.ErrInvalidSortKey.Error()
	case errors.Is(err, e.ErrSizeRequired):
		return http.StatusBadRequest, e.ErrSizeRequired.Error()
	case errors.Is(err, e.ErrColorRequired):
		return http.StatusBadRequest, e.ErrColorRequired.Error()
	case errors.Is(err, e.ErrUnknownSize):
		return http.StatusBadRequest, e.ErrUnknownSize.Error()
	case errors.Is(err, e.ErrUnknownColor):
		return http.StatusBadRequest, e.ErrUnknownColor.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrLineNotFound):
		return http.StatusNotFound, e.ErrLineNotFound.Error()
	case errors.Is(err, e.ErrInvalidCoupon):
		return http.StatusUnprocessableEntity, e.ErrInvalidCoupon.Error()
	case errors.Is(err, e.ErrCouponAlreadyApplied):
		return http.StatusConflict, e.ErrCouponAlreadyApplied.Error()
	case errors.Is(err, e.ErrOutOfStock):
		return http.StatusConflict, e.ErrOutOfStock.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

const sessionHeader = "X-Session-ID"

// ensureSession возвращает идентификатор сессии из заголовка, выпуская новый
// для первого запроса. Идентификатор всегда дублируется в ответ.
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	w.Header().Set(sessionHeader, sessionID)
	return sessionID
}

// parsePriceToCents converts a string like "59.99" or "60" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPriceRange
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPriceRange
	}

	if d.Exponent() < -2 {
		return 0, e.ErrInvalidPriceRange
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// formatCents форматирует цену в центах как строку с двумя знаками: "129.99".
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// parseFilters читает фасеты каталога из query-параметров. Отсутствующий
// фасет не ограничивает выдачу; границы цены по умолчанию — весь диапазон.
func parseFilters(r *http.Request) (catalog.Filters, error) {
	q := r.URL.Query()

	filters := catalog.Filters{
		Categories:    splitCSV(q.Get("categories")),
		Brands:        splitCSV(q.Get("brands")),
		PriceMinCents: 0,
		PriceMaxCents: math.MaxInt64,
	}

	if v := q.Get("price_min"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return catalog.Filters{}, err
		}
		filters.PriceMinCents = cents
	}

	if v := q.Get("price_max"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return catalog.Filters{}, err
		}
		filters.PriceMaxCents = cents
	}

	if filters.PriceMinCents > filters.PriceMaxCents {
		return catalog.Filters{}, e.ErrInvalidPriceRange
	}

	return filters, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
