// Package mocks содержит тестовые реализации интерфейсов repository на testify/mock.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// CRUDRepository мок общего контракта хранилища
type CRUDRepository[T any] struct{ mock.Mock }

func (m *CRUDRepository[T]) Count(ctx context.Context) (int64, error) {
	args := m.MethodCalled("Count", ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CRUDRepository[T]) List(ctx context.Context, limit, offset int) ([]*T, error) {
	args := m.MethodCalled("List", ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *CRUDRepository[T]) Create(ctx context.Context, item *T) error {
	return m.MethodCalled("Create", ctx, item).Error(0)
}

func (m *CRUDRepository[T]) CreateBatch(ctx context.Context, items []*T) error {
	return m.MethodCalled("CreateBatch", ctx, items).Error(0)
}

func (m *CRUDRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.MethodCalled("GetByID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CRUDRepository[T]) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.MethodCalled("DeleteByID", ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CRUDRepository[T]) DeleteAll(ctx context.Context) ([]*T, error) {
	args := m.MethodCalled("DeleteAll", ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

type UserRepository struct {
	CRUDRepository[entity.User]
}

type TeamRepository struct {
	CRUDRepository[entity.Team]
}

type AuthUserRepository struct {
	CRUDRepository[entity.AuthUser]
}

func (m *AuthUserRepository) Restore(ctx context.Context, users []*entity.AuthUser) error {
	return m.MethodCalled("Restore", ctx, users).Error(0)
}

type MemberRepository struct {
	CRUDRepository[entity.Member]
}

func (m *MemberRepository) ListEmailsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberEmail, error) {
	args := m.MethodCalled("ListEmailsByTeam", ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MemberEmail), args.Error(1)
}

func (m *MemberRepository) ListInfosByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberInfo, error) {
	args := m.MethodCalled("ListInfosByTeam", ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MemberInfo), args.Error(1)
}

func (m *MemberRepository) ListNamesByTeam(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberName, error) {
	args := m.MethodCalled("ListNamesByTeam", ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MemberName), args.Error(1)
}

// TxManager выполняет fn без транзакции и считает вызовы
type TxManager struct {
	Calls int
}

func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// Locker выполняет fn сразу; если Err задан, fn не вызывается
type Locker struct {
	Err  error
	Keys []string
}

func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if l.Err != nil {
		return l.Err
	}
	l.Keys = append(l.Keys, key)
	return fn(ctx)
}

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.TeamRepository     = (*TeamRepository)(nil)
	_ repository.AuthUserRepository = (*AuthUserRepository)(nil)
	_ repository.MemberRepository   = (*MemberRepository)(nil)
	_ repository.TransactionManager = (*TxManager)(nil)
	_ repository.Locker             = (*Locker)(nil)
)
