package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPersistence struct {
	mock.Mock
}

func (m *MockPersistence) Load(ctx context.Context) (*domain.Collections, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Collections), args.Error(1)
}

func (m *MockPersistence) Save(ctx context.Context, collections *domain.Collections) error {
	args := m.Called(ctx, collections)
	return args.Error(0)
}

var errStorageDown = errors.New("storage down")

// newCatalog собирает CatalogUseCase с предсказуемыми идентификаторами и часами,
// которые сдвигаются на минуту при каждом обращении.
func newCatalog(t *testing.T, persistence usecase.Persistence) *usecase.CatalogUseCase {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ticks := 0
	seq := 0

	return usecase.NewCatalogUC(
		persistence,
		logger.NewNop(),
		usecase.WithClock(func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Minute)
		}),
		usecase.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id_%06d", seq)
		}),
	)
}

func acceptingPersistence() *MockPersistence {
	m := new(MockPersistence)
	m.On("Save", mock.Anything, mock.Anything).Return(nil)
	return m
}

func TestCatalogUseCase_WidgetOrderScenario(t *testing.T) {
	ctx := context.Background()
	persistence := acceptingPersistence()
	catalog := newCatalog(t, persistence)

	product, err := catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Widget", Cost: 10, Price: 25}, "")
	require.NoError(t, err)
	require.Equal(t, domain.StockIn, product.Stock)
	require.InDelta(t, 60, product.Margin(), 1e-9)

	order, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", ProductID: product.ID, Quantity: 3}, "")
	require.NoError(t, err)
	require.Equal(t, "Widget", order.ProductName)
	require.Equal(t, domain.StatusPending, order.Status)
	require.InDelta(t, 75, order.Amount, 1e-9)
	require.InDelta(t, 45, order.Profit, 1e-9)

	totals := usecase.DashboardTotals(catalog.Collections().Orders)
	require.InDelta(t, 75, totals.Revenue, 1e-9)
	require.InDelta(t, 45, totals.Profit, 1e-9)
	require.InDelta(t, 60, totals.MarginPercent, 1e-9)
	require.Equal(t, 1, totals.OrderCount)
	require.Equal(t, 1, totals.PendingCount)

	persistence.AssertNumberOfCalls(t, "Save", 2)
}

func TestCatalogUseCase_OrderSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t, acceptingPersistence())

	product, err := catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Widget", Cost: 10, Price: 25}, "")
	require.NoError(t, err)

	order, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", ProductID: product.ID, Quantity: 3}, "")
	require.NoError(t, err)

	_, err = catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Widget Pro", Cost: 12, Price: 30}, product.ID)
	require.NoError(t, err)

	stored, ok := catalog.Collections().Order(order.ID)
	require.True(t, ok)
	require.Equal(t, "Widget", stored.ProductName)
	require.Equal(t, 25.0, stored.UnitPrice)
	require.Equal(t, 10.0, stored.UnitCost)
	require.InDelta(t, 75, stored.Amount, 1e-9)

	// Повторное сохранение заказа берёт текущие данные товара.
	updated, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", ProductID: product.ID, Quantity: 3, Status: domain.StatusShipped}, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, updated.ID)
	require.Equal(t, order.CreatedAt, updated.CreatedAt)
	require.Equal(t, "Widget Pro", updated.ProductName)
	require.InDelta(t, 90, updated.Amount, 1e-9)
	require.InDelta(t, 54, updated.Profit, 1e-9)
	require.Len(t, catalog.Collections().Orders, 1)
}

func TestCatalogUseCase_UpsertOrder_UnknownProduct(t *testing.T) {
	catalog := newCatalog(t, acceptingPersistence())

	order, err := catalog.UpsertOrder(context.Background(), &usecase.UpsertOrderReq{Customer: "Bob", ProductID: "gone", Quantity: 2}, "")
	require.NoError(t, err)
	require.Equal(t, domain.UnknownProductName, order.ProductName)
	require.Zero(t, order.UnitPrice)
	require.Zero(t, order.Amount)
	require.Zero(t, order.Profit)
}

func TestCatalogUseCase_ValidationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	persistence := new(MockPersistence)
	catalog := newCatalog(t, persistence)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "product_without_name",
			call: func() error {
				_, err := catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "  ", Cost: 1, Price: 2}, "")
				return err
			},
		},
		{
			name: "supplier_rating_out_of_range",
			call: func() error {
				_, err := catalog.UpsertSupplier(ctx, &usecase.UpsertSupplierReq{Name: "Acme", Rating: 9}, "")
				return err
			},
		},
		{
			name: "order_zero_quantity",
			call: func() error {
				_, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", Quantity: 0}, "")
				return err
			},
		},
		{
			name: "order_unknown_status",
			call: func() error {
				_, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", Quantity: 1, Status: "lost"}, "")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, e.ErrValidation)
		})
	}

	require.Equal(t, domain.NewCollections(), catalog.Collections())
	persistence.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogUseCase_UpdateUnknownID(t *testing.T) {
	persistence := new(MockPersistence)
	catalog := newCatalog(t, persistence)

	_, err := catalog.UpsertProduct(context.Background(), &usecase.UpsertProductReq{Name: "Widget"}, "missing")
	require.ErrorIs(t, err, e.ErrNotFound)
	require.Empty(t, catalog.Collections().Products)
	persistence.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogUseCase_UpsertSupplier(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t, acceptingPersistence())

	supplier, err := catalog.UpsertSupplier(ctx, &usecase.UpsertSupplierReq{Name: "Acme", Rating: 4, ShippingDays: 0}, "")
	require.NoError(t, err)
	require.Nil(t, supplier.ShippingDays)

	updated, err := catalog.UpsertSupplier(ctx, &usecase.UpsertSupplierReq{Name: "Acme Ltd", Rating: 5, ShippingDays: 7}, supplier.ID)
	require.NoError(t, err)
	require.Equal(t, supplier.ID, updated.ID)
	require.Equal(t, supplier.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.ShippingDays)
	require.Equal(t, 7, *updated.ShippingDays)

	suppliers := catalog.Collections().Suppliers
	require.Len(t, suppliers, 1)
	require.Equal(t, "Acme Ltd", suppliers[0].Name)
}

func TestCatalogUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	persistence := acceptingPersistence()
	catalog := newCatalog(t, persistence)

	supplier, err := catalog.UpsertSupplier(ctx, &usecase.UpsertSupplierReq{Name: "Acme", Rating: 5}, "")
	require.NoError(t, err)
	product, err := catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Widget", Cost: 10, Price: 25, SupplierID: supplier.ID}, "")
	require.NoError(t, err)
	order, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", ProductID: product.ID, Quantity: 1}, "")
	require.NoError(t, err)

	deleted, err := catalog.Delete(ctx, domain.KindProduct, product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Заказ сохраняет свой снимок, ссылка на поставщика остаётся висячей.
	c := catalog.Collections()
	require.Empty(t, c.Products)
	stored, ok := c.Order(order.ID)
	require.True(t, ok)
	require.Equal(t, "Widget", stored.ProductName)

	deleted, err = catalog.Delete(ctx, domain.KindProduct, product.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = catalog.Delete(ctx, domain.EntityKind("invoice"), "x")
	require.ErrorIs(t, err, e.ErrUnknownEntityKind)

	// 3 upsert + 1 успешное удаление.
	persistence.AssertNumberOfCalls(t, "Save", 4)
}

func TestCatalogUseCase_SetOrderStatus(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t, acceptingPersistence())

	order, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", Quantity: 1}, "")
	require.NoError(t, err)

	ok, err := catalog.SetOrderStatus(ctx, order.ID, domain.StatusDelivered)
	require.NoError(t, err)
	require.True(t, ok)

	// Откат статуса назад разрешён.
	ok, err = catalog.SetOrderStatus(ctx, order.ID, domain.StatusPending)
	require.NoError(t, err)
	require.True(t, ok)

	stored, _ := catalog.Collections().Order(order.ID)
	require.Equal(t, domain.StatusPending, stored.Status)
	require.Equal(t, order.Amount, stored.Amount)

	ok, err = catalog.SetOrderStatus(ctx, "missing", domain.StatusShipped)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = catalog.SetOrderStatus(ctx, order.ID, "lost")
	require.ErrorIs(t, err, e.ErrValidation)
}

func TestCatalogUseCase_SetOrderStatus_NoOpAndFailure(t *testing.T) {
	ctx := context.Background()
	persistence := new(MockPersistence)
	persistence.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	persistence.On("Save", mock.Anything, mock.Anything).Return(errStorageDown).Once()

	catalog := newCatalog(t, persistence)

	order, err := catalog.UpsertOrder(ctx, &usecase.UpsertOrderReq{Customer: "Jane", Quantity: 1}, "")
	require.NoError(t, err)

	// Неизвестный заказ и тот же статус не доходят до хранилища.
	ok, err := catalog.SetOrderStatus(ctx, "missing", domain.StatusShipped)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = catalog.SetOrderStatus(ctx, order.ID, domain.StatusPending)
	require.NoError(t, err)
	require.True(t, ok)

	persistence.AssertNumberOfCalls(t, "Save", 1)

	ok, err = catalog.SetOrderStatus(ctx, order.ID, domain.StatusShipped)
	require.ErrorIs(t, err, errStorageDown)
	require.False(t, ok)

	stored, found := catalog.Collections().Order(order.ID)
	require.True(t, found)
	require.Equal(t, domain.StatusPending, stored.Status)
	persistence.AssertExpectations(t)
}

func TestCatalogUseCase_SaveFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	persistence := new(MockPersistence)
	persistence.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	persistence.On("Save", mock.Anything, mock.Anything).Return(errStorageDown)

	catalog := newCatalog(t, persistence)

	product, err := catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Widget", Cost: 10, Price: 25}, "")
	require.NoError(t, err)

	_, err = catalog.UpsertProduct(ctx, &usecase.UpsertProductReq{Name: "Gadget", Cost: 1, Price: 2}, "")
	require.ErrorIs(t, err, errStorageDown)

	deleted, err := catalog.Delete(ctx, domain.KindProduct, product.ID)
	require.ErrorIs(t, err, errStorageDown)
	require.False(t, deleted)

	products := catalog.Collections().Products
	require.Len(t, products, 1)
	require.Equal(t, "Widget", products[0].Name)
}

func TestCatalogUseCase_Load(t *testing.T) {
	stored := domain.NewCollections()
	stored.Products = append(stored.Products, domain.Product{ID: "p1", Name: "Widget", Stock: domain.StockLow})

	persistence := new(MockPersistence)
	persistence.On("Load", mock.Anything).Return(stored, nil).Once()

	catalog := newCatalog(t, persistence)
	require.NoError(t, catalog.Load(context.Background()))
	require.Equal(t, stored.Products, catalog.Collections().Products)

	failing := new(MockPersistence)
	failing.On("Load", mock.Anything).Return(nil, errStorageDown).Once()
	require.ErrorIs(t, newCatalog(t, failing).Load(context.Background()), errStorageDown)

	persistence.AssertExpectations(t)
	failing.AssertExpectations(t)
}

func TestCatalogUseCase_CollectionsIsSnapshot(t *testing.T) {
	catalog := newCatalog(t, acceptingPersistence())

	_, err := catalog.UpsertProduct(context.Background(), &usecase.UpsertProductReq{Name: "Widget", Cost: 10, Price: 25}, "")
	require.NoError(t, err)

	snapshot := catalog.Collections()
	snapshot.Products[0].Name = "Tampered"

	require.Equal(t, "Widget", catalog.Collections().Products[0].Name)
}
