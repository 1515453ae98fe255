package usecase_test

import (
	"testing"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "ord_aaa111", Customer: "Jane Doe", ProductName: "Widget", Status: domain.StatusPending, CreatedAt: at(1)},
		{ID: "ord_bbb222", Customer: "Bob", ProductName: "Gadget", Status: domain.StatusShipped, CreatedAt: at(3)},
		{ID: "ord_ccc333", Customer: "Alice", ProductName: "widget mini", Status: domain.StatusPending, CreatedAt: at(2)},
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := sampleOrders()

	require.Equal(t, orders, usecase.FilterOrdersByStatus(orders, usecase.FilterAll))

	pending := usecase.FilterOrdersByStatus(orders, usecase.OrderFilter(domain.StatusPending))
	require.Len(t, pending, 2)
	require.Equal(t, "ord_aaa111", pending[0].ID)
	require.Equal(t, "ord_ccc333", pending[1].ID)

	require.Empty(t, usecase.FilterOrdersByStatus(orders, usecase.OrderFilter(domain.StatusDelivered)))
}

func TestParseOrderFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    usecase.OrderFilter
		wantErr bool
	}{
		{in: "", want: usecase.FilterAll},
		{in: "ALL", want: usecase.FilterAll},
		{in: "shipped", want: usecase.OrderFilter(domain.StatusShipped)},
		{in: "refunded", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := usecase.ParseOrderFilter(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, e.ErrValidation)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSearch(t *testing.T) {
	orders := sampleOrders()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty_query", query: "  ", want: []string{"ord_aaa111", "ord_bbb222", "ord_ccc333"}},
		{name: "case_insensitive_product", query: "WIDGET", want: []string{"ord_aaa111", "ord_ccc333"}},
		{name: "customer", query: "bob", want: []string{"ord_bbb222"}},
		{name: "order_id", query: "c333", want: []string{"ord_ccc333"}},
		{name: "no_match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.Search(orders, tt.query)

			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestSearch_SupplierEmail(t *testing.T) {
	suppliers := []domain.Supplier{
		{ID: "s1", Name: "Acme", Email: "orders@acme.io"},
		{ID: "s2", Name: "Globex"},
	}

	got := usecase.Search(suppliers, "acme.io")
	require.Len(t, got, 1)
	require.Equal(t, "s1", got[0].ID)

	// Для товаров ищется только название.
	products := []domain.Product{{ID: "p1", Name: "Widget", Description: "blue"}}
	require.Empty(t, usecase.Search(products, "blue"))
}

func TestListOrders(t *testing.T) {
	got := usecase.ListOrders(sampleOrders(), usecase.OrderFilter(domain.StatusPending), "widget")
	require.Len(t, got, 2)
	require.Equal(t, "ord_ccc333", got[0].ID)
	require.Equal(t, "ord_aaa111", got[1].ID)
}
