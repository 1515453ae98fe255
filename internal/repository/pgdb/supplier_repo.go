package pgdb

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

var supplierColumns = []string{"id", "position", "name", "email", "phone", "rating", "shipping_days", "notes", "created_at"}

// SupplierRepo реализует репозиторий поставщиков поверх PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
	conv converter.SupplierConverter
}

func NewSupplierRepo(pool *pgxpool.Pool, conv converter.SupplierConverter) *SupplierRepo {
	return &SupplierRepo{pool: pool, conv: conv}
}

func (s *SupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT id, position, name, email, phone, rating, shipping_days, notes, created_at
		FROM suppliers
		ORDER BY position
	`

	rows, err := querierFromCtx(ctx, s.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.SupplierModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Supplier, 0, len(models))
	for i := range models {
		result = append(result, *s.conv.ToEntity(&models[i]))
	}

	return result, nil
}

func (s *SupplierRepo) ReplaceAll(ctx context.Context, suppliers []domain.Supplier) error {
	rows := make([][]any, 0, len(suppliers))
	for i := range suppliers {
		m := s.conv.ToModel(&suppliers[i], i)
		rows = append(rows, []any{m.ID, m.Position, m.Name, m.Email, m.Phone, m.Rating, m.ShippingDays, m.Notes, m.CreatedAt})
	}

	if err := replaceTable(ctx, "suppliers", supplierColumns, rows); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
