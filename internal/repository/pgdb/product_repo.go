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

var productColumns = []string{"id", "position", "name", "cost", "price", "supplier_id", "stock", "description", "created_at"}

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{pool: pool, conv: conv}
}

// List возвращает товары в порядке коллекции.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, position, name, cost, price, supplier_id, stock, description, created_at
		FROM products
		ORDER BY position
	`

	rows, err := querierFromCtx(ctx, p.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *p.conv.ToEntity(&models[i]))
	}

	return result, nil
}

// ReplaceAll заменяет содержимое таблицы. Требует транзакцию в контексте.
func (p *ProductRepo) ReplaceAll(ctx context.Context, products []domain.Product) error {
	rows := make([][]any, 0, len(products))
	for i := range products {
		m := p.conv.ToModel(&products[i], i)
		rows = append(rows, []any{m.ID, m.Position, m.Name, m.Cost, m.Price, m.SupplierID, m.Stock, m.Description, m.CreatedAt})
	}

	if err := replaceTable(ctx, "products", productColumns, rows); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
