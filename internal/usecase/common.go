package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// Ключи блокировок массового удаления
const (
	lockKeyUsers     = "users"
	lockKeyAuthUsers = "auth_users"
	lockKeyTeams     = "teams"
	lockKeyMembers   = "members"
)

// now возвращает время с точностью, которую хранит timestamptz
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// getByID читает сущность и превращает отсутствие строки в NotFound
func getByID[T any](ctx context.Context, repo repository.CRUDRepository[T], id uuid.UUID, name string) (*T, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewNotFound(name+" not found", err)
		}
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return item, nil
}

// deleteByID удаляет сущность; повторное удаление дает NotFound
func deleteByID[T any](ctx context.Context, repo repository.CRUDRepository[T], id uuid.UUID, name string) error {
	deleted, err := repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	if !deleted {
		return domainErrors.NewNotFound(name+" not found", domainErrors.ErrNotFound)
	}
	return nil
}

// deleteAll удаляет все строки под блокировкой ключа
func deleteAll[T any](ctx context.Context, locker repository.Locker, repo repository.CRUDRepository[T], key string) (int, error) {
	var deleted []*T
	var opErr error

	err := locker.WithLock(ctx, key, func(ctx context.Context) error {
		deleted, opErr = repo.DeleteAll(ctx)
		return nil
	})
	if err != nil {
		return 0, domainErrors.NewInternal("failed to lock "+key, err, domainErrors.CodeLock)
	}
	if opErr != nil {
		return 0, domainErrors.NewInternal("failed to delete all "+key, opErr, domainErrors.CodeDBError)
	}

	return len(deleted), nil
}
