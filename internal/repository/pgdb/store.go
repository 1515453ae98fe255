package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/DRSN-tech/dropflow/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store сохраняет коллекции в три таблицы. Save полностью заменяет их содержимое
// в одной транзакции, Load читает согласованный снимок.
type Store struct {
	pool      *pgxpool.Pool
	products  *ProductRepo
	suppliers *SupplierRepo
	orders    *OrderRepo
	logger    logger.Logger
}

func NewStore(pool *pgxpool.Pool, logger logger.Logger) *Store {
	return &Store{
		pool:      pool,
		products:  NewProductRepo(pool, converter.ProductConverter{}),
		suppliers: NewSupplierRepo(pool, converter.SupplierConverter{}),
		orders:    NewOrderRepo(pool, converter.OrderConverter{}),
		logger:    logger,
	}
}

func (s *Store) Load(ctx context.Context) (*domain.Collections, error) {
	const op = "pgdb.Store.Load"

	var (
		result *domain.Collections
		err    error
	)
	err = s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(ctx context.Context) error {
		result = domain.NewCollections()

		if result.Products, err = s.products.List(ctx); err != nil {
			return err
		}
		if result.Suppliers, err = s.suppliers.List(ctx); err != nil {
			return err
		}
		result.Orders, err = s.orders.List(ctx)

		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return result, nil
}

func (s *Store) Save(ctx context.Context, collections *domain.Collections) error {
	const op = "pgdb.Store.Save"

	err := s.inTx(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		if err := s.suppliers.ReplaceAll(ctx, collections.Suppliers); err != nil {
			return err
		}
		if err := s.products.ReplaceAll(ctx, collections.Products); err != nil {
			return err
		}

		return s.orders.ReplaceAll(ctx, collections.Orders)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// inTx выполняет fn в транзакции; при ошибке fn транзакция откатывается.
func (s *Store) inTx(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, opts, s.pool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Warnf("Rollback failed: %v", rbErr)
			}
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T: %w", tx.Transaction(), e.ErrTransactionNotFound)
	}

	if err = fn(tr.WithTx(ctx, pgxTx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
