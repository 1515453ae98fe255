package converter

import "github.com/DRSN-tech/dropflow/internal/domain"

// SupplierConverter преобразует поставщиков между domain и моделью PostgreSQL.
// Position — индекс сущности в коллекции, по нему восстанавливается порядок при чтении.
type SupplierConverter struct{}

func (SupplierConverter) ToModel(entity *domain.Supplier, position int) *SupplierModel {
	var days *int32
	if entity.ShippingDays != nil {
		d := int32(*entity.ShippingDays)
		days = &d
	}

	return &SupplierModel{
		ID:           entity.ID,
		Position:     position,
		Name:         entity.Name,
		Email:        entity.Email,
		Phone:        entity.Phone,
		Rating:       int16(entity.Rating),
		ShippingDays: days,
		Notes:        entity.Notes,
		CreatedAt:    entity.CreatedAt,
	}
}

func (SupplierConverter) ToEntity(model *SupplierModel) *domain.Supplier {
	var days *int
	if model.ShippingDays != nil {
		d := int(*model.ShippingDays)
		days = &d
	}

	return &domain.Supplier{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		Phone:        model.Phone,
		Rating:       int(model.Rating),
		ShippingDays: days,
		Notes:        model.Notes,
		CreatedAt:    model.CreatedAt,
	}
}

// ProductConverter преобразует товары между domain и моделью PostgreSQL.
type ProductConverter struct{}

func (ProductConverter) ToModel(entity *domain.Product, position int) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Position:    position,
		Name:        entity.Name,
		Cost:        entity.Cost,
		Price:       entity.Price,
		SupplierID:  entity.SupplierID,
		Stock:       string(entity.Stock),
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Cost:        model.Cost,
		Price:       model.Price,
		SupplierID:  model.SupplierID,
		Stock:       domain.StockStatus(model.Stock),
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}

// OrderConverter преобразует заказы между domain и моделью PostgreSQL.
type OrderConverter struct{}

func (OrderConverter) ToModel(entity *domain.Order, position int) *OrderModel {
	return &OrderModel{
		ID:          entity.ID,
		Position:    position,
		Customer:    entity.Customer,
		Email:       entity.Email,
		ProductID:   entity.ProductID,
		ProductName: entity.ProductName,
		UnitPrice:   entity.UnitPrice,
		UnitCost:    entity.UnitCost,
		Quantity:    int32(entity.Quantity),
		Amount:      entity.Amount,
		Profit:      entity.Profit,
		Status:      string(entity.Status),
		Address:     entity.Address,
		CreatedAt:   entity.CreatedAt,
	}
}

func (OrderConverter) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:          model.ID,
		Customer:    model.Customer,
		Email:       model.Email,
		ProductID:   model.ProductID,
		ProductName: model.ProductName,
		UnitPrice:   model.UnitPrice,
		UnitCost:    model.UnitCost,
		Quantity:    int(model.Quantity),
		Amount:      model.Amount,
		Profit:      model.Profit,
		Status:      domain.OrderStatus(model.Status),
		Address:     model.Address,
		CreatedAt:   model.CreatedAt,
	}
}
