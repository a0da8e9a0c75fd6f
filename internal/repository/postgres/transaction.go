package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

// TransactionManager выполняет функции в транзакции, которую репозитории берут из контекста
type TransactionManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTransactionManager создает менеджер транзакций с уровнем изоляции READ COMMITTED
func NewTransactionManager(pool *pgxpool.Pool) *TransactionManager {
	return &TransactionManager{
		pool: pool,
		opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// RunInTransaction выполняет fn в транзакции. Вложенный вызов переиспользует внешнюю транзакцию.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := extractTx(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := tm.pool.BeginTx(ctx, tm.opts)
	if err != nil {
		return wrapErr("failed to begin transaction", err)
	}

	if err := fn(injectTx(ctx, tx)); err != nil {
		// откат не должен зависеть от отмены контекста запроса
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("failed to commit transaction", err)
	}

	return nil
}

func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func extractTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// getConn возвращает транзакцию из контекста или пул
func getConn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return pool
}

// querier общий набор методов pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// sendBatch выполняет пакет вставок и возвращает первую ошибку
func sendBatch(ctx context.Context, q querier, batch *pgx.Batch, op string) error {
	if batch.Len() == 0 {
		return nil
	}

	results := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return wrapErr(op, err)
		}
	}

	if err := results.Close(); err != nil {
		return wrapErr(op, err)
	}
	return nil
}
