package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// PurgeState состояние удаления всех учетных записей
type PurgeState int

const (
	PurgeStart PurgeState = iota
	PurgePrimaryDeleted
	PurgeDependentsDeleted
	PurgeCompensating
	PurgeDone
	PurgeFailedCountError
	PurgeFailedCompensated
	PurgeFailedUncompensated
)

func (s PurgeState) String() string {
	switch s {
	case PurgeStart:
		return "start"
	case PurgePrimaryDeleted:
		return "primary_deleted"
	case PurgeDependentsDeleted:
		return "dependents_deleted"
	case PurgeCompensating:
		return "compensating"
	case PurgeDone:
		return "done"
	case PurgeFailedCountError:
		return "failed_count_error"
	case PurgeFailedCompensated:
		return "failed_compensated"
	case PurgeFailedUncompensated:
		return "failed_uncompensated"
	}
	return fmt.Sprintf("purge_state(%d)", int(s))
}

// Terminal сообщает, что переходов из состояния больше нет
func (s PurgeState) Terminal() bool {
	switch s {
	case PurgeDone, PurgeFailedCountError, PurgeFailedCompensated, PurgeFailedUncompensated:
		return true
	}
	return false
}

// PurgeResult итог удаления: конечное состояние, удаленные записи и ошибка для клиента
type PurgeResult struct {
	State   PurgeState
	Deleted []*entity.AuthUser
	Err     error
}

// authUserPurge удаляет учетные записи, затем участников.
// Если участников удалить не удалось, учетные записи вставляются обратно.
type authUserPurge struct {
	authUsers repository.AuthUserRepository
	members   repository.MemberRepository
	txManager repository.TransactionManager
	log       *zap.Logger

	state   PurgeState
	deleted []*entity.AuthUser
	cause   error
	err     error
}

func (p *authUserPurge) run(ctx context.Context) PurgeResult {
	for !p.state.Terminal() {
		next := p.step(ctx)
		p.log.Debug("purge transition", zap.Stringer("from", p.state), zap.Stringer("to", next))
		p.state = next
	}

	return PurgeResult{State: p.state, Deleted: p.deleted, Err: p.err}
}

func (p *authUserPurge) step(ctx context.Context) PurgeState {
	switch p.state {
	case PurgeStart:
		deleted, err := p.authUsers.DeleteAll(ctx)
		if err != nil {
			p.err = fmt.Errorf("failed to delete auth users: %w", err)
			return PurgeFailedCountError
		}
		p.deleted = deleted
		return PurgePrimaryDeleted

	case PurgePrimaryDeleted:
		if _, err := p.members.DeleteAll(ctx); err != nil {
			p.cause = err
			return PurgeCompensating
		}
		return PurgeDependentsDeleted

	case PurgeDependentsDeleted:
		return PurgeDone

	case PurgeCompensating:
		// восстановление выполняется до конца даже при отмене запроса
		restoreCtx := context.WithoutCancel(ctx)
		err := p.txManager.RunInTransaction(restoreCtx, func(ctx context.Context) error {
			return p.authUsers.Restore(ctx, p.deleted)
		})
		if err != nil {
			p.err = uncompensatedError(p.cause, err)
			return PurgeFailedUncompensated
		}
		p.err = domainErrors.NewInternal("failed to delete members, auth users restored", p.cause, domainErrors.CodeDBError)
		return PurgeFailedCompensated
	}

	return p.state
}

// uncompensatedError сообщает коды ошибки повторной вставки с отдельным ведущим кодом
func uncompensatedError(cause, restoreErr error) error {
	codes := []string{domainErrors.CodeUncompensatedDelete}
	if errors.Is(restoreErr, domainErrors.ErrDuplication) {
		codes = append(codes, domainErrors.CodeDeletedDuplication)
	} else {
		for _, c := range domainErrors.Translate(restoreErr).Codes {
			codes = append(codes, c.Code)
		}
	}

	return domainErrors.NewInternal(
		"failed to delete members and to restore auth users",
		errors.Join(cause, restoreErr),
		codes...,
	)
}

// DeleteAllAuthUsers удаляет все учетные записи и всех участников.
// Конкурентные вызовы выполняются по одному под блокировкой.
func (uc *AuthUserUseCase) DeleteAllAuthUsers(ctx context.Context) (*PurgeResult, error) {
	var result PurgeResult

	err := uc.locker.WithLock(ctx, lockKeyAuthUsers, func(ctx context.Context) error {
		purge := &authUserPurge{
			authUsers: uc.authUserRepo,
			members:   uc.memberRepo,
			txManager: uc.txManager,
			log:       uc.log,
			state:     PurgeStart,
		}
		result = purge.run(ctx)
		return nil
	})
	if err != nil {
		return nil, domainErrors.NewInternal("failed to lock auth users", err, domainErrors.CodeLock)
	}

	fields := []zap.Field{
		zap.Stringer("state", result.State),
		zap.Int("auth_users", len(result.Deleted)),
	}
	switch result.State {
	case PurgeDone:
		uc.log.Info("all auth users deleted", fields...)
	case PurgeFailedCompensated:
		uc.log.Warn("auth users purge compensated", append(fields, zap.Error(result.Err))...)
	default:
		uc.log.Error("auth users purge failed", append(fields, zap.Error(result.Err))...)
	}

	return &result, result.Err
}
