package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
)

// OrderFilter — статус заказа либо FilterAll.
type OrderFilter string

const FilterAll OrderFilter = "all"

// ParseOrderFilter разбирает фильтр по статусу; пустая строка означает FilterAll.
func ParseOrderFilter(s string) (OrderFilter, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == string(FilterAll) {
		return FilterAll, nil
	}

	if !domain.OrderStatus(trimmed).Valid() {
		return "", e.NewValidationError("status", fmt.Sprintf("unknown order filter %q", s))
	}

	return OrderFilter(trimmed), nil
}

// FilterOrdersByStatus возвращает заказы с указанным статусом в исходном порядке.
func FilterOrdersByStatus(orders []domain.Order, filter OrderFilter) []domain.Order {
	if filter == FilterAll || filter == "" {
		return slices.Clone(orders)
	}

	res := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == string(filter) {
			res = append(res, o)
		}
	}

	return res
}

// SortByCreatedDesc возвращает копию, отсортированную от новых к старым.
// При равном CreatedAt сохраняется порядок коллекции.
func SortByCreatedDesc[T domain.Entity](items []T) []T {
	res := slices.Clone(items)
	slices.SortStableFunc(res, func(a, b T) int {
		return b.Created().Compare(a.Created())
	})

	return res
}

// Search оставляет элементы, у которых хотя бы одно поле поиска содержит запрос без учёта регистра.
// Пустой запрос возвращает коллекцию без изменений.
func Search[T domain.Searchable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(items)
	}

	res := make([]T, 0)
	for _, item := range items {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), q) {
				res = append(res, item)
				break
			}
		}
	}

	return res
}

// ListOrders: фильтр по статусу, затем поиск, затем сортировка по дате.
func ListOrders(orders []domain.Order, filter OrderFilter, query string) []domain.Order {
	return SortByCreatedDesc(Search(FilterOrdersByStatus(orders, filter), query))
}
