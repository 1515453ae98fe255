package domain

import "slices"

// Collections — три коллекции сущностей в порядке их добавления.
// Ссылки между сущностями хранятся идентификаторами и разрешаются через методы-резолверы.
type Collections struct {
	Products  []Product
	Suppliers []Supplier
	Orders    []Order
}

func NewCollections() *Collections {
	return &Collections{
		Products:  make([]Product, 0),
		Suppliers: make([]Supplier, 0),
		Orders:    make([]Order, 0),
	}
}

// Clone возвращает независимую копию коллекций.
func (c *Collections) Clone() *Collections {
	if c == nil {
		return NewCollections()
	}

	suppliers := make([]Supplier, len(c.Suppliers))
	for i, s := range c.Suppliers {
		if s.ShippingDays != nil {
			days := *s.ShippingDays
			s.ShippingDays = &days
		}
		suppliers[i] = s
	}

	return &Collections{
		Products:  append(make([]Product, 0, len(c.Products)), c.Products...),
		Suppliers: suppliers,
		Orders:    append(make([]Order, 0, len(c.Orders)), c.Orders...),
	}
}

func (c *Collections) Product(id string) (Product, bool) {
	return lookup(c.Products, id)
}

func (c *Collections) Supplier(id string) (Supplier, bool) {
	return lookup(c.Suppliers, id)
}

func (c *Collections) Order(id string) (Order, bool) {
	return lookup(c.Orders, id)
}

// Contains сообщает, есть ли сущность указанного типа с данным идентификатором.
func (c *Collections) Contains(kind EntityKind, id string) bool {
	switch kind {
	case KindProduct:
		return indexOf(c.Products, id) >= 0
	case KindSupplier:
		return indexOf(c.Suppliers, id) >= 0
	case KindOrder:
		return indexOf(c.Orders, id) >= 0
	default:
		return false
	}
}

// Remove удаляет сущность по идентификатору. Возвращает false, если её не было.
func (c *Collections) Remove(kind EntityKind, id string) bool {
	switch kind {
	case KindProduct:
		return remove(&c.Products, id)
	case KindSupplier:
		return remove(&c.Suppliers, id)
	case KindOrder:
		return remove(&c.Orders, id)
	default:
		return false
	}
}

func lookup[T Entity](items []T, id string) (T, bool) {
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}

	var zero T
	return zero, false
}

func indexOf[T Entity](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return item.GetID() == id })
}

func remove[T Entity](items *[]T, id string) bool {
	before := len(*items)
	*items = slices.DeleteFunc(*items, func(item T) bool { return item.GetID() == id })

	return len(*items) != before
}

// Upsert заменяет сущность с тем же идентификатором или добавляет её в конец.
func Upsert[T Entity](items []T, item T) []T {
	if i := indexOf(items, item.GetID()); i >= 0 {
		items[i] = item
		return items
	}

	return append(items, item)
}
