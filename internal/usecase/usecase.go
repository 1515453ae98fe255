package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

type CatalogUC interface {
	UpsertProduct(ctx context.Context, req *UpsertProductReq, existingID string) (*domain.Product, error)
	UpsertSupplier(ctx context.Context, req *UpsertSupplierReq, existingID string) (*domain.Supplier, error)
	UpsertOrder(ctx context.Context, req *UpsertOrderReq, existingID string) (*domain.Order, error)
	Delete(ctx context.Context, kind domain.EntityKind, id string) (bool, error)
	SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)
}

type DashboardUC interface {
	Overview(ctx context.Context) *Overview
	ListProducts(ctx context.Context, query string) []ProductView
	ListSuppliers(ctx context.Context, query string) []SupplierView
	ListOrders(ctx context.Context, filter OrderFilter, query string) []domain.Order
	DescribeProduct(ctx context.Context, product domain.Product) ProductView
	DescribeSupplier(ctx context.Context, supplier domain.Supplier) SupplierView
}
