package domain

import (
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/e"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Supplier описывает поставщика. ShippingDays == nil означает, что срок доставки не указан.
type Supplier struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Rating       int
	ShippingDays *int
	Notes        string
	CreatedAt    time.Time
}

func (s Supplier) GetID() string      { return s.ID }
func (s Supplier) Created() time.Time { return s.CreatedAt }

func (s Supplier) SearchFields() []string {
	if s.Email == "" {
		return []string{s.Name}
	}

	return []string{s.Name, s.Email}
}

func (s Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return e.NewValidationError("name", "is required")
	}

	// Рейтинг не обрезается молча: выход за диапазон считается ошибкой вызывающей стороны.
	if s.Rating < MinRating || s.Rating > MaxRating {
		return e.NewValidationError("rating", "must be between 1 and 5")
	}

	if s.ShippingDays != nil && *s.ShippingDays <= 0 {
		return e.NewValidationError("shipping_days", "must be a positive integer")
	}

	return nil
}
