package converter

import "github.com/DRSN-tech/dropflow/internal/domain"

// CollectionsConverter переводит сущности домена в модели Redis и обратно.
type CollectionsConverter struct{}

func (CollectionsConverter) ToProductModels(products []domain.Product) []ProductRedisModel {
	models := make([]ProductRedisModel, len(products))
	for i, p := range products {
		models[i] = ProductRedisModel{
			ID:          p.ID,
			Name:        p.Name,
			Cost:        p.Cost,
			Price:       p.Price,
			SupplierID:  p.SupplierID,
			Stock:       string(p.Stock),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return models
}

func (CollectionsConverter) ToProducts(models []ProductRedisModel) []domain.Product {
	products := make([]domain.Product, len(models))
	for i, m := range models {
		products[i] = domain.Product{
			ID:          m.ID,
			Name:        m.Name,
			Cost:        m.Cost,
			Price:       m.Price,
			SupplierID:  m.SupplierID,
			Stock:       domain.StockStatus(m.Stock),
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		}
	}

	return products
}

func (CollectionsConverter) ToSupplierModels(suppliers []domain.Supplier) []SupplierRedisModel {
	models := make([]SupplierRedisModel, len(suppliers))
	for i, s := range suppliers {
		models[i] = SupplierRedisModel{
			ID:           s.ID,
			Name:         s.Name,
			Email:        s.Email,
			Phone:        s.Phone,
			Rating:       s.Rating,
			ShippingDays: s.ShippingDays,
			Notes:        s.Notes,
			CreatedAt:    s.CreatedAt,
		}
	}

	return models
}

func (CollectionsConverter) ToSuppliers(models []SupplierRedisModel) []domain.Supplier {
	suppliers := make([]domain.Supplier, len(models))
	for i, m := range models {
		suppliers[i] = domain.Supplier{
			ID:           m.ID,
			Name:         m.Name,
			Email:        m.Email,
			Phone:        m.Phone,
			Rating:       m.Rating,
			ShippingDays: m.ShippingDays,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt,
		}
	}

	return suppliers
}

func (CollectionsConverter) ToOrderModels(orders []domain.Order) []OrderRedisModel {
	models := make([]OrderRedisModel, len(orders))
	for i, o := range orders {
		models[i] = OrderRedisModel{
			ID:          o.ID,
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
			Address:     o.Address,
			CreatedAt:   o.CreatedAt,
		}
	}

	return models
}

func (CollectionsConverter) ToOrders(models []OrderRedisModel) []domain.Order {
	orders := make([]domain.Order, len(models))
	for i, m := range models {
		orders[i] = domain.Order{
			ID:          m.ID,
			Customer:    m.Customer,
			Email:       m.Email,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			UnitPrice:   m.UnitPrice,
			UnitCost:    m.UnitCost,
			Quantity:    m.Quantity,
			Amount:      m.Amount,
			Profit:      m.Profit,
			Status:      domain.OrderStatus(m.Status),
			Address:     m.Address,
			CreatedAt:   m.CreatedAt,
		}
	}

	return orders
}
