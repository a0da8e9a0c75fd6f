package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

// CRUDRepository общий контракт хранилища для сущностей сервиса
type CRUDRepository[T any] interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*T, error)
	Create(ctx context.Context, item *T) error
	CreateBatch(ctx context.Context, items []*T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	// DeleteAll возвращает удаленные строки целиком
	DeleteAll(ctx context.Context) ([]*T, error)
}

type UserRepository interface {
	CRUDRepository[entity.User]
}

type AuthUserRepository interface {
	CRUDRepository[entity.AuthUser]
	// Restore вставляет ранее удаленные строки с их исходными идентификаторами
	Restore(ctx context.Context, users []*entity.AuthUser) error
}

type TeamRepository interface {
	CRUDRepository[entity.Team]
}

type MemberRepository interface {
	CRUDRepository[entity.Member]
	ListEmailsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberEmail, error)
	ListInfosByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberInfo, error)
	ListNamesByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberName, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker сериализует разрушающие массовые операции по ключу
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
