package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/shopspring/decimal"
)

const maxRequestBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку со статусом и безопасным текстом для клиента.
func ToHTTPResponse(err error) *ErrorResponse {
	var vErr *e.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp := NewErrorResponse(http.StatusBadRequest, vErr.Error())
		resp.Field = vErr.Field
		return resp
	case errors.Is(err, e.ErrNotFound):
		return NewErrorResponse(http.StatusNotFound, e.ErrNotFound.Error())
	case errors.Is(err, e.ErrMissingFields):
		return NewErrorResponse(http.StatusBadRequest, unwrapMessage(err, e.ErrMissingFields))
	case errors.Is(err, e.ErrInvalidPrice):
		return NewErrorResponse(http.StatusBadRequest, unwrapMessage(err, e.ErrInvalidPrice))
	case errors.Is(err, e.ErrPricePrecision):
		return NewErrorResponse(http.StatusBadRequest, unwrapMessage(err, e.ErrPricePrecision))
	case errors.Is(err, e.ErrInvalidQuantity):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidQuantity.Error())
	case errors.Is(err, e.ErrStatusBadRequest), errors.Is(err, e.ErrUnknownEntityKind):
		return NewErrorResponse(http.StatusBadRequest, e.ErrStatusBadRequest.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

// unwrapMessage оставляет имя поля из обёртки вида "cost: invalid price", но не внутренние детали.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "+sentinel.Error()); i > 0 {
		field := msg[:i]
		if j := strings.LastIndex(field, ": "); j >= 0 {
			field = field[j+2:]
		}
		return field + ": " + sentinel.Error()
	}

	return sentinel.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	resp := ToHTTPResponse(err)
	WriteSuccess(w, resp.Code, resp)
}

// WriteSuccess кодирует ответ до записи заголовка. Если data не кодируется в JSON,
// клиент получает 500, а ошибка возвращается вызывающему для логирования.
func WriteSuccess(w http.ResponseWriter, status int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		fallback, _ := json.Marshal(NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error()))
		writeBody(w, http.StatusInternalServerError, fallback)
		return e.Wrap("encode response", err)
	}

	writeBody(w, status, body)
	return nil
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// respond пишет успешный ответ и логирует ошибку кодирования.
func respond(w http.ResponseWriter, log logger.Logger, status int, data any) {
	if err := WriteSuccess(w, status, data); err != nil {
		log.Errorf(err, "failed to write response")
	}
}

// decodeJSON читает тело запроса не больше maxRequestBodySize.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseMoney проверяет денежное значение из запроса.
// Ошибка, если значение отсутствует, отрицательно, больше 10^9 или имеет больше 2 знаков после запятой.
func parseMoney(field string, v decimal.NullDecimal) (float64, error) {
	if !v.Valid {
		return 0, e.Wrap(field, e.ErrMissingFields)
	}

	d := v.Decimal
	if d.IsNegative() {
		return 0, e.Wrap(field, e.ErrInvalidPrice)
	}

	maxAmount := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxAmount) {
		return 0, e.Wrap(field, e.ErrInvalidPrice)
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return 0, e.Wrap(field, e.ErrPricePrecision)
	}

	return d.InexactFloat64(), nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return e.Wrap(field, e.ErrMissingFields)
	}

	return nil
}

func quantityFromRequest(q *int) (int, error) {
	if q == nil {
		return 0, e.Wrap("quantity", e.ErrMissingFields)
	}
	if *q <= 0 {
		return 0, fmt.Errorf("quantity %d: %w", *q, e.ErrInvalidQuantity)
	}

	return *q, nil
}
