package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки доменного уровня
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("entity not found")
	ErrUnknownEntityKind = errors.New("unknown entity kind")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = errors.New("incorrect environment variable")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	// 400 Bad Request
	ErrStatusBadRequest = errors.New("bad request")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrPricePrecision   = errors.New("price must have at most 2 decimal places")
	ErrInvalidQuantity  = errors.New("invalid quantity")

	// 500 Internal Server Error
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError описывает некорректное или отсутствующее поле входных данных мутации.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation).
func (v *ValidationError) Unwrap() error {
	return ErrValidation
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
