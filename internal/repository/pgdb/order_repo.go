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

var orderColumns = []string{
	"id", "position", "customer", "email", "product_id", "product_name", "unit_price", "unit_cost",
	"quantity", "amount", "profit", "status", "address", "created_at",
}

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Снимок товара (название, цена, себестоимость) хранится в строке заказа без внешнего ключа.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT
			id, position, customer, email, product_id, product_name, unit_price, unit_cost,
			quantity, amount, profit, status, address, created_at
		FROM orders
		ORDER BY position
	`

	rows, err := querierFromCtx(ctx, o.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.OrderModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Order, 0, len(models))
	for i := range models {
		result = append(result, *o.conv.ToEntity(&models[i]))
	}

	return result, nil
}

func (o *OrderRepo) ReplaceAll(ctx context.Context, orders []domain.Order) error {
	rows := make([][]any, 0, len(orders))
	for i := range orders {
		m := o.conv.ToModel(&orders[i], i)
		rows = append(rows, []any{
			m.ID, m.Position, m.Customer, m.Email, m.ProductID, m.ProductName, m.UnitPrice, m.UnitCost,
			m.Quantity, m.Amount, m.Profit, m.Status, m.Address, m.CreatedAt,
		})
	}

	if err := replaceTable(ctx, "orders", orderColumns, rows); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
