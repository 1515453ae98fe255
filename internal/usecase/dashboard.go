package usecase

import (
	"context"
	"slices"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	RecentOrdersLimit = 5
	TopProductsLimit  = 5
)

// DashboardTotals сворачивает заказы в итоговые показатели. Для пустого списка все значения нулевые.
func DashboardTotals(orders []domain.Order) Totals {
	revenue := decimal.Zero
	profit := decimal.Zero
	pending := 0

	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.Amount))
		profit = profit.Add(decimal.NewFromFloat(o.Profit))
		if o.Status == domain.StatusPending {
			pending++
		}
	}

	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	return Totals{
		Revenue:       revenue.InexactFloat64(),
		Profit:        profit.InexactFloat64(),
		MarginPercent: margin.InexactFloat64(),
		OrderCount:    len(orders),
		PendingCount:  pending,
	}
}

// RecentOrders — не более n самых новых заказов.
func RecentOrders(orders []domain.Order, n int) []domain.Order {
	sorted := SortByCreatedDesc(orders)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// TopProductsByMargin — не более n товаров с наибольшей маржой. Равные значения остаются в порядке коллекции.
func TopProductsByMargin(products []domain.Product, n int) []ProductMargin {
	res := make([]ProductMargin, 0, len(products))
	for _, p := range products {
		res = append(res, ProductMargin{Product: p, MarginPercent: p.Margin()})
	}

	slices.SortStableFunc(res, func(a, b ProductMargin) int {
		switch {
		case a.MarginPercent > b.MarginPercent:
			return -1
		case a.MarginPercent < b.MarginPercent:
			return 1
		default:
			return 0
		}
	})

	if n >= 0 && len(res) > n {
		res = res[:n]
	}

	return res
}

// SupplierProductCounts считает товары по идентификатору поставщика. Товары без поставщика не учитываются.
func SupplierProductCounts(products []domain.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if p.SupplierID != "" {
			counts[p.SupplierID]++
		}
	}

	return counts
}

// DashboardUseCase строит представления поверх снимка коллекций.
type DashboardUseCase struct {
	reader CollectionsReader
}

func NewDashboardUC(reader CollectionsReader) *DashboardUseCase {
	return &DashboardUseCase{reader: reader}
}

func (d *DashboardUseCase) Overview(ctx context.Context) *Overview {
	c := d.reader.Collections()

	return &Overview{
		Totals:        DashboardTotals(c.Orders),
		ProductCount:  len(c.Products),
		SupplierCount: len(c.Suppliers),
		RecentOrders:  RecentOrders(c.Orders, RecentOrdersLimit),
		TopProducts:   TopProductsByMargin(c.Products, TopProductsLimit),
	}
}

// ListProducts — товары в порядке коллекции с разрешённым именем поставщика.
func (d *DashboardUseCase) ListProducts(ctx context.Context, query string) []ProductView {
	c := d.reader.Collections()

	products := Search(c.Products, query)
	res := make([]ProductView, 0, len(products))
	for _, p := range products {
		var supplierName string
		if s, ok := c.Supplier(p.SupplierID); ok {
			supplierName = s.Name
		}
		res = append(res, NewProductView(p, supplierName))
	}

	return res
}

// DescribeProduct дополняет только что сохранённый товар производными полями.
func (d *DashboardUseCase) DescribeProduct(ctx context.Context, product domain.Product) ProductView {
	var supplierName string
	if s, ok := d.reader.Collections().Supplier(product.SupplierID); ok {
		supplierName = s.Name
	}

	return NewProductView(product, supplierName)
}

// DescribeSupplier дополняет поставщика количеством его товаров.
func (d *DashboardUseCase) DescribeSupplier(ctx context.Context, supplier domain.Supplier) SupplierView {
	return SupplierView{
		Supplier:     supplier,
		ProductCount: SupplierProductCounts(d.reader.Collections().Products)[supplier.ID],
	}
}

func (d *DashboardUseCase) ListSuppliers(ctx context.Context, query string) []SupplierView {
	c := d.reader.Collections()

	counts := SupplierProductCounts(c.Products)
	suppliers := Search(c.Suppliers, query)
	res := make([]SupplierView, 0, len(suppliers))
	for _, s := range suppliers {
		res = append(res, SupplierView{Supplier: s, ProductCount: counts[s.ID]})
	}

	return res
}

func (d *DashboardUseCase) ListOrders(ctx context.Context, filter OrderFilter, query string) []domain.Order {
	return ListOrders(d.reader.Collections().Orders, filter, query)
}
