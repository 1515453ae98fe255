package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/e"
)

// StockStatus описывает наличие товара на складе поставщика.
type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StockIn, StockLow, StockOut:
		return true
	default:
		return false
	}
}

// Label возвращает подпись статуса для отображения.
func (s StockStatus) Label() string {
	switch s {
	case StockIn:
		return "In Stock"
	case StockLow:
		return "Low Stock"
	case StockOut:
		return "Out of Stock"
	default:
		return string(s)
	}
}

func ParseStockStatus(s string) (StockStatus, error) {
	status := StockStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", e.NewValidationError("stock", fmt.Sprintf("unknown stock status %q", s))
	}

	return status, nil
}

// Product описывает товар. SupplierID является слабой ссылкой, поставщик может быть удалён.
type Product struct {
	ID          string
	Name        string
	Cost        float64
	Price       float64
	SupplierID  string
	Stock       StockStatus
	Description string
	CreatedAt   time.Time
}

func (p Product) GetID() string      { return p.ID }
func (p Product) Created() time.Time { return p.CreatedAt }

func (p Product) SearchFields() []string {
	return []string{p.Name}
}

// UnitProfit — прибыль с одной единицы товара.
func (p Product) UnitProfit() float64 {
	return p.Price - p.Cost
}

// Margin возвращает маржу в процентах; при нулевой цене маржа считается равной 0.
func (p Product) Margin() float64 {
	return MarginPercent(p.Price, p.Cost)
}

// MarginPercent = (price - cost) / price * 100, 0 при price == 0.
func MarginPercent(price, cost float64) float64 {
	if price == 0 {
		return 0
	}

	return (price - cost) / price * 100
}

// Validate проверяет обязательные поля и неотрицательность денежных значений.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return e.NewValidationError("name", "is required")
	}

	if err := validateAmount("cost", p.Cost); err != nil {
		return err
	}

	if err := validateAmount("price", p.Price); err != nil {
		return err
	}

	if !p.Stock.Valid() {
		return e.NewValidationError("stock", fmt.Sprintf("unknown stock status %q", p.Stock))
	}

	return nil
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return e.NewValidationError(field, "must be a finite number")
	}

	if v < 0 {
		return e.NewValidationError(field, "must be non-negative")
	}

	return nil
}
