// Package redislock реализует repository.Locker поверх Redis для нескольких реплик сервиса
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "membership:lock:"

var (
	// ErrLockHeld ключ занят другим владельцем
	ErrLockHeld = errors.New("lock is held by another owner")
	// ErrLockLost ключ истек или перешел к другому владельцу, пока выполнялась fn
	ErrLockLost = errors.New("lock lost while held")
)

// releaseScript удаляет ключ, только если в нем еще наш токен
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript продлевает ключ, только если в нем еще наш токен
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Locker мьютекс на SET NX PX
type Locker struct {
	client  redis.UniversalClient
	ttl     time.Duration
	maxWait time.Duration
	log     *zap.Logger
}

// New создает Locker. ttl ограничивает время жизни ключа, maxWait время ожидания захвата
func New(client redis.UniversalClient, ttl, maxWait time.Duration, log *zap.Logger) *Locker {
	return &Locker{
		client:  client,
		ttl:     ttl,
		maxWait: maxWait,
		log:     log.Named("redislock"),
	}
}

// WithLock захватывает key, выполняет fn и освобождает key.
// Пока fn работает, ключ продлевается каждые ttl/3. Если продлить не удалось,
// контекст fn отменяется с причиной ErrLockLost.
func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := keyPrefix + key
	token := uuid.NewString()

	if err := backoff.Retry(func() error {
		return l.tryAcquire(ctx, lockKey, token)
	}, l.newBackOff(ctx)); err != nil {
		return fmt.Errorf("failed to acquire lock %q: %w", key, err)
	}

	l.log.Debug("lock acquired", zap.String("key", key))

	fnCtx, cancel := context.WithCancelCause(ctx)
	stop := make(chan struct{})
	renewDone := make(chan struct{})

	go func() {
		defer close(renewDone)
		l.keepAlive(context.WithoutCancel(ctx), key, lockKey, token, stop, cancel)
	}()

	defer func() {
		close(stop)
		<-renewDone
		cancel(nil)

		released, err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{lockKey}, token).Int()
		if err != nil {
			l.log.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
			return
		}
		if released == 0 {
			l.log.Warn("lock expired before release", zap.String("key", key), zap.Duration("ttl", l.ttl))
		}
	}()

	err := fn(fnCtx)
	if err != nil {
		return err
	}
	if errors.Is(context.Cause(fnCtx), ErrLockLost) {
		return fmt.Errorf("lock %q: %w", key, ErrLockLost)
	}
	return nil
}

// keepAlive продлевает ключ до закрытия stop. Одна неудачная попытка допустима,
// пока ключ гарантированно живет до следующей.
func (l *Locker) keepAlive(
	ctx context.Context,
	key, lockKey, token string,
	stop <-chan struct{},
	lost context.CancelCauseFunc,
) {
	interval := max(l.ttl/3, time.Millisecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastExtended := time.Now()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		extended, err := extendScript.Run(ctx, l.client, []string{lockKey}, token, l.ttl.Milliseconds()).Int()
		switch {
		case err == nil && extended == 1:
			lastExtended = time.Now()
			continue
		case err == nil:
			l.log.Error("lock taken over before extension", zap.String("key", key))
		case time.Since(lastExtended)+interval < l.ttl:
			l.log.Warn("failed to extend lock, retrying", zap.String("key", key), zap.Error(err))
			continue
		default:
			l.log.Error("failed to extend lock", zap.String("key", key), zap.Error(err))
		}

		lost(ErrLockLost)
		return
	}
}

func (l *Locker) tryAcquire(ctx context.Context, lockKey, token string) error {
	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return backoff.Permanent(ctxErr)
		}
		return err
	}
	if !ok {
		return ErrLockHeld
	}
	return nil
}

func (l *Locker) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	b.MaxElapsedTime = l.maxWait
	return backoff.WithContext(b, ctx)
}

// NewClient подключается к Redis и проверяет соединение через PING
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
