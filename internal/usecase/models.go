package usecase

import "github.com/DRSN-tech/dropflow/internal/domain"

// MUTATIONS

// UpsertProductReq — полный набор полей товара для создания или обновления.
type UpsertProductReq struct {
	Name        string
	Cost        float64
	Price       float64
	SupplierID  string
	Stock       domain.StockStatus // пусто: in_stock
	Description string
}

// UpsertSupplierReq — полный набор полей поставщика.
type UpsertSupplierReq struct {
	Name         string
	Email        string
	Phone        string
	Rating       int
	ShippingDays int // <= 0: срок доставки не указан
	Notes        string
}

// UpsertOrderReq — полный набор полей заказа. Цена и себестоимость берутся из товара.
type UpsertOrderReq struct {
	Customer  string
	Email     string
	ProductID string
	Quantity  int
	Status    domain.OrderStatus // пусто: pending
	Address   string
}

// AGGREGATION

// Totals — сводные показатели дашборда.
type Totals struct {
	Revenue       float64
	Profit        float64
	MarginPercent float64
	OrderCount    int
	PendingCount  int
}

// ProductMargin — товар вместе с его маржой.
type ProductMargin struct {
	Product       domain.Product
	MarginPercent float64
}

// Overview — всё, что нужно главной странице дашборда.
type Overview struct {
	Totals        Totals
	ProductCount  int
	SupplierCount int
	RecentOrders  []domain.Order
	TopProducts   []ProductMargin
}

// ProductView — товар с производными полями для таблицы товаров.
// SupplierName пуст, если поставщик не указан или уже удалён.
type ProductView struct {
	Product       domain.Product
	UnitProfit    float64
	MarginPercent float64
	SupplierName  string
}

// SupplierView — поставщик с количеством привязанных к нему товаров.
type SupplierView struct {
	Supplier     domain.Supplier
	ProductCount int
}

// PRICING

// ProfitResult — разбор прибыли с одной продажи.
type ProfitResult struct {
	GrossProfit   float64
	Fees          float64
	NetProfit     float64
	MarginPercent float64
}

// MarkupResult — рекомендуемая цена для целевой маржи.
// Valid == false означает результат Invalid: при марже >= 100% формула не определена.
type MarkupResult struct {
	SuggestedPrice float64
	ExpectedProfit float64
	Valid          bool
}

// InvalidMarkup — результат-сентинел для недостижимой маржи.
var InvalidMarkup = MarkupResult{}

// MAPPERS

func NewUpsertProductReq(name string, cost, price float64, supplierID string, stock domain.StockStatus, description string) *UpsertProductReq {
	return &UpsertProductReq{
		Name:        name,
		Cost:        cost,
		Price:       price,
		SupplierID:  supplierID,
		Stock:       stock,
		Description: description,
	}
}

func NewUpsertOrderReq(customer, email, productID string, quantity int, status domain.OrderStatus, address string) *UpsertOrderReq {
	return &UpsertOrderReq{
		Customer:  customer,
		Email:     email,
		ProductID: productID,
		Quantity:  quantity,
		Status:    status,
		Address:   address,
	}
}

func NewProductView(product domain.Product, supplierName string) ProductView {
	return ProductView{
		Product:       product,
		UnitProfit:    product.UnitProfit(),
		MarginPercent: product.Margin(),
		SupplierName:  supplierName,
	}
}
