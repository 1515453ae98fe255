package pgdb

import (
	"context"

	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// querierFromCtx читает внутри транзакции, если она есть в контексте, иначе через пул.
func querierFromCtx(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}

	return pool
}

// replaceTable удаляет все строки таблицы и вставляет новые через COPY. Работает только внутри транзакции.
func replaceTable(ctx context.Context, table string, columns []string, rows [][]any) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM "+pgx.Identifier{table}.Sanitize()); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if len(rows) == 0 {
		return nil
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
