package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUseCase — единственная точка изменения коллекций.
// Каждая мутация собирается на копии, сохраняется через Persistence и только после
// успешного сохранения становится текущим состоянием.
type CatalogUseCase struct {
	mu          sync.RWMutex
	collections *domain.Collections
	persistence Persistence
	logger      logger.Logger
	now         func() time.Time
	newID       func() string
}

type CatalogOption func(*CatalogUseCase)

// WithClock подменяет источник времени для CreatedAt.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *CatalogUseCase) { c.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(newID func() string) CatalogOption {
	return func(c *CatalogUseCase) { c.newID = newID }
}

func NewCatalogUC(persistence Persistence, logger logger.Logger, opts ...CatalogOption) *CatalogUseCase {
	c := &CatalogUseCase{
		collections: domain.NewCollections(),
		persistence: persistence,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load читает коллекции из хранилища и делает их текущим состоянием.
func (c *CatalogUseCase) Load(ctx context.Context) error {
	const op = "CatalogUseCase.Load"

	collections, err := c.persistence.Load(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if collections == nil {
		collections = domain.NewCollections()
	}

	c.mu.Lock()
	c.collections = collections
	c.mu.Unlock()

	c.logger.Infof(
		"Collections loaded. products: %d, suppliers: %d, orders: %d",
		len(collections.Products), len(collections.Suppliers), len(collections.Orders),
	)

	return nil
}

// Collections возвращает снимок текущего состояния. Изменение снимка не влияет на хранилище.
func (c *CatalogUseCase) Collections() *domain.Collections {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.collections.Clone()
}

// UpsertProduct создаёт товар (existingID пуст) или полностью заменяет поля существующего.
func (c *CatalogUseCase) UpsertProduct(ctx context.Context, req *UpsertProductReq, existingID string) (*domain.Product, error) {
	const op = "CatalogUseCase.UpsertProduct"

	product := domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Cost:        req.Cost,
		Price:       req.Price,
		SupplierID:  strings.TrimSpace(req.SupplierID),
		Stock:       req.Stock,
		Description: req.Description,
	}
	if product.Stock == "" {
		product.Stock = domain.StockIn
	}

	if err := product.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.assignIdentity(domain.KindProduct, existingID, &product.ID, &product.CreatedAt); err != nil {
		return nil, e.Wrap(op, err)
	}

	next := c.collections.Clone()
	next.Products = domain.Upsert(next.Products, product)

	if err := c.commit(ctx, next); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("Product saved. id: %s, name: %s", product.ID, product.Name)

	return &product, nil
}

// UpsertSupplier создаёт или заменяет поставщика. ShippingDays <= 0 сохраняется как "не указано".
func (c *CatalogUseCase) UpsertSupplier(ctx context.Context, req *UpsertSupplierReq, existingID string) (*domain.Supplier, error) {
	const op = "CatalogUseCase.UpsertSupplier"

	supplier := domain.Supplier{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Phone:  strings.TrimSpace(req.Phone),
		Rating: req.Rating,
		Notes:  req.Notes,
	}
	if req.ShippingDays > 0 {
		days := req.ShippingDays
		supplier.ShippingDays = &days
	}

	if err := supplier.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.assignIdentity(domain.KindSupplier, existingID, &supplier.ID, &supplier.CreatedAt); err != nil {
		return nil, e.Wrap(op, err)
	}

	next := c.collections.Clone()
	next.Suppliers = domain.Upsert(next.Suppliers, supplier)

	if err := c.commit(ctx, next); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("Supplier saved. id: %s, name: %s", supplier.ID, supplier.Name)

	return &supplier, nil
}

// UpsertOrder создаёт или заменяет заказ. Название, цена и себестоимость товара копируются
// на момент вызова, в том числе при обновлении. Если товар не найден, цена и себестоимость
// равны нулю, а название равно domain.UnknownProductName.
func (c *CatalogUseCase) UpsertOrder(ctx context.Context, req *UpsertOrderReq, existingID string) (*domain.Order, error) {
	const op = "CatalogUseCase.UpsertOrder"

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	order := domain.Order{
		Customer:  strings.TrimSpace(req.Customer),
		Email:     strings.TrimSpace(req.Email),
		ProductID: strings.TrimSpace(req.ProductID),
		Quantity:  req.Quantity,
		Status:    status,
		Address:   req.Address,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order.ProductName = domain.UnknownProductName
	if product, ok := c.collections.Product(order.ProductID); ok {
		order.ProductName = product.Name
		order.UnitPrice = product.Price
		order.UnitCost = product.Cost
	}

	if err := order.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	qty := decimal.NewFromInt(int64(order.Quantity))
	price := decimal.NewFromFloat(order.UnitPrice)
	cost := decimal.NewFromFloat(order.UnitCost)
	order.Amount = price.Mul(qty).InexactFloat64()
	order.Profit = price.Sub(cost).Mul(qty).InexactFloat64()

	if err := c.assignIdentity(domain.KindOrder, existingID, &order.ID, &order.CreatedAt); err != nil {
		return nil, e.Wrap(op, err)
	}

	next := c.collections.Clone()
	next.Orders = domain.Upsert(next.Orders, order)

	if err := c.commit(ctx, next); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf(
		"Order saved. id: %s, product: %s, quantity: %d, amount: %.2f",
		order.ID, order.ProductName, order.Quantity, order.Amount,
	)

	return &order, nil
}

// Delete удаляет сущность. Для отсутствующего идентификатора возвращается false и ничего не сохраняется.
// Заказы и товары, ссылающиеся на удалённую сущность, не затрагиваются.
func (c *CatalogUseCase) Delete(ctx context.Context, kind domain.EntityKind, id string) (bool, error) {
	const op = "CatalogUseCase.Delete"

	if !kind.Valid() {
		return false, e.Wrap(op, fmt.Errorf("%q: %w", kind, e.ErrUnknownEntityKind))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.collections.Contains(kind, id) {
		c.logger.Debugf("Nothing to delete. kind: %s, id: %s", kind, id)
		return false, nil
	}

	next := c.collections.Clone()
	next.Remove(kind, id)

	if err := c.commit(ctx, next); err != nil {
		return false, e.Wrap(op, err)
	}

	c.logger.Infof("Entity deleted. kind: %s, id: %s", kind, id)

	return true, nil
}

// SetOrderStatus меняет только статус заказа. Любой переход разрешён.
// Для неизвестного заказа возвращается false без ошибки.
func (c *CatalogUseCase) SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	const op = "CatalogUseCase.SetOrderStatus"

	if !status.Valid() {
		return false, e.Wrap(op, e.NewValidationError("status", fmt.Sprintf("unknown order status %q", status)))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.collections.Orders, func(o domain.Order) bool { return o.ID == id })
	if i < 0 {
		c.logger.Warnf("Order not found for status change. id: %s, status: %s", id, status)
		return false, nil
	}
	if c.collections.Orders[i].Status == status {
		return true, nil
	}

	next := c.collections.Clone()
	next.Orders[i].Status = status

	if err := c.commit(ctx, next); err != nil {
		return false, e.Wrap(op, err)
	}

	c.logger.Debugf("Order status changed. id: %s, status: %s", id, status)

	return true, nil
}

// assignIdentity выдаёт новый идентификатор и время создания или переносит их из существующей сущности.
// Вызывается под c.mu.
func (c *CatalogUseCase) assignIdentity(kind domain.EntityKind, existingID string, id *string, createdAt *time.Time) error {
	existingID = strings.TrimSpace(existingID)
	if existingID == "" {
		*id = c.newID()
		*createdAt = c.now().UTC()
		return nil
	}

	var (
		prev domain.Entity
		ok   bool
	)
	switch kind {
	case domain.KindProduct:
		prev, ok = c.collections.Product(existingID)
	case domain.KindSupplier:
		prev, ok = c.collections.Supplier(existingID)
	case domain.KindOrder:
		prev, ok = c.collections.Order(existingID)
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, existingID, e.ErrNotFound)
	}

	*id = prev.GetID()
	*createdAt = prev.Created()

	return nil
}

// commit сохраняет новое состояние и делает его текущим. Вызывается под c.mu.
// При ошибке сохранения текущее состояние не меняется.
func (c *CatalogUseCase) commit(ctx context.Context, next *domain.Collections) error {
	if err := c.persistence.Save(ctx, next); err != nil {
		c.logger.Errorf(err, "Failed to persist collections")
		return err
	}

	c.collections = next

	return nil
}
