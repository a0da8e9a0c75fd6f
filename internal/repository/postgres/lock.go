package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAdvisoryLockHeld блокировку держит другая сессия
var ErrAdvisoryLockHeld = errors.New("advisory lock is held by another session")

// AdvisoryLocker сериализует операции через сессионные advisory-блокировки PostgreSQL.
// Ожидающие не держат соединение: каждая попытка берет соединение из пула,
// вызывает pg_try_advisory_lock и при неудаче сразу возвращает его.
// Захваченная блокировка держится на своем соединении до завершения fn,
// поэтому fn нужен пул минимум из двух соединений.
type AdvisoryLocker struct {
	pool    *pgxpool.Pool
	maxWait time.Duration
}

// NewAdvisoryLocker создает блокировщик поверх пула; maxWait ограничивает ожидание захвата
func NewAdvisoryLocker(pool *pgxpool.Pool, maxWait time.Duration) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool, maxWait: maxWait}
}

// WithLock ждет блокировку по ключу, выполняет fn и снимает блокировку
func (l *AdvisoryLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	var conn *pgxpool.Conn

	err := backoff.Retry(func() error {
		c, err := l.tryLock(ctx, key)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			return err
		}
		conn = c
		return nil
	}, l.newBackOff(ctx))
	if err != nil {
		return wrapErr(fmt.Sprintf("failed to take advisory lock %q", key), err)
	}
	defer conn.Release()

	defer func() {
		// снимаем блокировку даже если контекст запроса уже отменен
		unlockCtx := context.WithoutCancel(ctx)
		if _, err := conn.Exec(unlockCtx, `SELECT pg_advisory_unlock(hashtext($1))`, key); err != nil {
			// закрытое соединение пул не вернет, блокировка уйдет вместе с сессией
			_ = conn.Conn().Close(unlockCtx)
		}
	}()

	return fn(ctx)
}

// tryLock делает одну попытку захвата. При неудаче соединение возвращается в пул.
func (l *AdvisoryLocker) tryLock(ctx context.Context, key string) (*pgxpool.Conn, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var locked bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock(hashtext($1))`, key).Scan(&locked); err != nil {
		conn.Release()
		return nil, err
	}
	if !locked {
		conn.Release()
		return nil, ErrAdvisoryLockHeld
	}
	return conn, nil
}

func (l *AdvisoryLocker) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = l.maxWait
	return backoff.WithContext(b, ctx)
}
