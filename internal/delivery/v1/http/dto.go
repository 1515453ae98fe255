package http

import (
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/shopspring/decimal"
)

// missingRef показывается вместо имени поставщика, если ссылка пуста или ведёт на удалённую запись.
const missingRef = "-"

// REQUESTS

type productRequest struct {
	Name        string              `json:"name"`
	Cost        decimal.NullDecimal `json:"cost" swaggertype:"string" example:"10.00"`
	Price       decimal.NullDecimal `json:"price" swaggertype:"string" example:"25.00"`
	SupplierID  string              `json:"supplier_id"`
	Stock       string              `json:"stock" enums:"in_stock,low_stock,out_of_stock"`
	Description string              `json:"description"`
}

type supplierRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Rating       *int   `json:"rating"`
	ShippingDays *int   `json:"shipping_days"`
	Notes        string `json:"notes"`
}

type orderRequest struct {
	Customer  string `json:"customer"`
	Email     string `json:"email"`
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
	Status    string `json:"status" enums:"pending,processing,shipped,delivered"`
	Address   string `json:"address"`
}

type statusRequest struct {
	Status string `json:"status" enums:"pending,processing,shipped,delivered"`
}

// RESPONSES

type productResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Cost          float64   `json:"cost"`
	Price         float64   `json:"price"`
	UnitProfit    float64   `json:"unit_profit"`
	MarginPercent float64   `json:"margin_percent"`
	SupplierID    string    `json:"supplier_id"`
	SupplierName  string    `json:"supplier_name"`
	Stock         string    `json:"stock"`
	StockLabel    string    `json:"stock_label"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

type supplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Rating       int       `json:"rating"`
	ShippingDays *int      `json:"shipping_days"`
	Notes        string    `json:"notes"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	Customer    string    `json:"customer"`
	Email       string    `json:"email"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	UnitCost    float64   `json:"unit_cost"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	Profit      float64   `json:"profit"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

type totalsResponse struct {
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
	OrderCount    int     `json:"order_count"`
	PendingCount  int     `json:"pending_count"`
}

type topProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MarginPercent float64 `json:"margin_percent"`
}

type dashboardResponse struct {
	Totals        totalsResponse       `json:"totals"`
	ProductCount  int                  `json:"product_count"`
	SupplierCount int                  `json:"supplier_count"`
	RecentOrders  []orderResponse      `json:"recent_orders"`
	TopProducts   []topProductResponse `json:"top_products"`
}

type profitResponse struct {
	GrossProfit   float64 `json:"gross_profit"`
	Fees          float64 `json:"fees"`
	NetProfit     float64 `json:"net_profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// markupResponse: при valid=false цена и прибыль не заданы.
type markupResponse struct {
	Valid          bool     `json:"valid"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	ExpectedProfit *float64 `json:"expected_profit,omitempty"`
}

// MAPPERS

func toProductResponse(v usecase.ProductView) productResponse {
	p := v.Product

	supplierName := v.SupplierName
	if supplierName == "" {
		supplierName = missingRef
	}

	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Cost:          p.Cost,
		Price:         p.Price,
		UnitProfit:    v.UnitProfit,
		MarginPercent: v.MarginPercent,
		SupplierID:    p.SupplierID,
		SupplierName:  supplierName,
		Stock:         string(p.Stock),
		StockLabel:    p.Stock.Label(),
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
	}
}

func toSupplierResponse(v usecase.SupplierView) supplierResponse {
	s := v.Supplier

	return supplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		Rating:       s.Rating,
		ShippingDays: s.ShippingDays,
		Notes:        s.Notes,
		ProductCount: v.ProductCount,
		CreatedAt:    s.CreatedAt,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		ShortID:     o.ShortID(),
		Customer:    o.Customer,
		Email:       o.Email,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		UnitPrice:   o.UnitPrice,
		UnitCost:    o.UnitCost,
		Quantity:    o.Quantity,
		Amount:      o.Amount,
		Profit:      o.Profit,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Address:     o.Address,
		CreatedAt:   o.CreatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	res := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o))
	}

	return res
}

func toDashboardResponse(o *usecase.Overview) dashboardResponse {
	top := make([]topProductResponse, 0, len(o.TopProducts))
	for _, pm := range o.TopProducts {
		top = append(top, topProductResponse{
			ID:            pm.Product.ID,
			Name:          pm.Product.Name,
			MarginPercent: pm.MarginPercent,
		})
	}

	return dashboardResponse{
		Totals: totalsResponse{
			Revenue:       o.Totals.Revenue,
			Profit:        o.Totals.Profit,
			MarginPercent: o.Totals.MarginPercent,
			OrderCount:    o.Totals.OrderCount,
			PendingCount:  o.Totals.PendingCount,
		},
		ProductCount:  o.ProductCount,
		SupplierCount: o.SupplierCount,
		RecentOrders:  toOrderResponses(o.RecentOrders),
		TopProducts:   top,
	}
}

func toMarkupResponse(m usecase.MarkupResult) markupResponse {
	if !m.Valid {
		return markupResponse{}
	}

	return markupResponse{
		Valid:          true,
		SuggestedPrice: &m.SuggestedPrice,
		ExpectedProfit: &m.ExpectedProfit,
	}
}
