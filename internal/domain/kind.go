package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/e"
)

// EntityKind — закрытое перечисление типов сущностей, которые хранит дашборд.
type EntityKind string

const (
	KindProduct  EntityKind = "product"
	KindSupplier EntityKind = "supplier"
	KindOrder    EntityKind = "order"
)

func (k EntityKind) Valid() bool {
	switch k {
	case KindProduct, KindSupplier, KindOrder:
		return true
	default:
		return false
	}
}

func (k EntityKind) String() string {
	return string(k)
}

// ParseEntityKind принимает как единственное, так и множественное число ("products").
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !k.Valid() {
		return "", fmt.Errorf("%q: %w", s, e.ErrUnknownEntityKind)
	}

	return k, nil
}

// Entity: стабильный идентификатор и неизменяемое время создания.
type Entity interface {
	GetID() string
	Created() time.Time
}

// Searchable — сущность, по текстовым полям которой работает поиск.
type Searchable interface {
	SearchFields() []string
}
