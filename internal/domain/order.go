package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/e"
)

// OrderStatus — этапы выполнения заказа. Порядок pending → processing → shipped → delivered
// носит описательный характер: любой статус может быть выставлен напрямую.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// OrderStatuses перечисляет статусы в порядке их следования.
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

// UnknownProductName подставляется в заказ, если товар не найден в момент сохранения.
const UnknownProductName = "Unknown"

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Label() string {
	if !s.Valid() {
		return string(s)
	}

	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ParseOrderStatus разбирает статус; пустая строка означает статус по умолчанию (pending).
func ParseOrderStatus(s string) (OrderStatus, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return StatusPending, nil
	}

	status := OrderStatus(trimmed)
	if !status.Valid() {
		return "", e.NewValidationError("status", fmt.Sprintf("unknown order status %q", s))
	}

	return status, nil
}

// Order — заказ покупателя. ProductName, UnitPrice и UnitCost копируются из товара
// в момент сохранения и дальше не пересчитываются.
type Order struct {
	ID          string
	Customer    string
	Email       string
	ProductID   string
	ProductName string
	UnitPrice   float64
	UnitCost    float64
	Quantity    int
	Amount      float64
	Profit      float64
	Status      OrderStatus
	Address     string
	CreatedAt   time.Time
}

func (o Order) GetID() string      { return o.ID }
func (o Order) Created() time.Time { return o.CreatedAt }

func (o Order) SearchFields() []string {
	return []string{o.Customer, o.ProductName, o.ID}
}

// ShortID — короткий видимый суффикс идентификатора (последние 6 символов).
func (o Order) ShortID() string {
	const visible = 6
	if len(o.ID) <= visible {
		return strings.ToUpper(o.ID)
	}

	return strings.ToUpper(o.ID[len(o.ID)-visible:])
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.Customer) == "" {
		return e.NewValidationError("customer", "is required")
	}

	if o.Quantity <= 0 {
		return e.NewValidationError("quantity", "must be a positive integer")
	}

	if !o.Status.Valid() {
		return e.NewValidationError("status", fmt.Sprintf("unknown order status %q", o.Status))
	}

	if err := validateAmount("unit_price", o.UnitPrice); err != nil {
		return err
	}

	return validateAmount("unit_cost", o.UnitCost)
}
