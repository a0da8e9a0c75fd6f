package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/repository/mocks"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

type purgeFixture struct {
	authUsers *mocks.AuthUserRepository
	members   *mocks.MemberRepository
	tx        *mocks.TxManager
	locker    *mocks.Locker
	uc        *usecase.AuthUserUseCase
	deleted   []*entity.AuthUser
}

func newPurgeFixture() *purgeFixture {
	f := &purgeFixture{
		authUsers: &mocks.AuthUserRepository{},
		members:   &mocks.MemberRepository{},
		tx:        &mocks.TxManager{},
		locker:    &mocks.Locker{},
	}
	f.uc = usecase.NewAuthUserUseCase(f.authUsers, f.members, f.tx, f.locker, zap.NewNop())

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		f.deleted = append(f.deleted, &entity.AuthUser{
			ID:           uuid.New(),
			Email:        email,
			Name:         "user",
			PasswordHash: "$2a$04$hash",
			CreatedAt:    created,
		})
	}
	return f
}

func TestDeleteAllAuthUsers_Done(t *testing.T) {
	f := newPurgeFixture()
	f.authUsers.On("DeleteAll", mock.Anything).Return(f.deleted, nil).Once()
	f.members.On("DeleteAll", mock.Anything).Return([]*entity.Member{}, nil).Once()

	result, err := f.uc.DeleteAllAuthUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, usecase.PurgeDone, result.State)
	assert.Len(t, result.Deleted, 3)
	assert.Equal(t, []string{"auth_users"}, f.locker.Keys)
	f.authUsers.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything)
}

func TestDeleteAllAuthUsers_PrimaryFailure(t *testing.T) {
	f := newPurgeFixture()
	f.authUsers.On("DeleteAll", mock.Anything).Return(nil, dbErr("failed to delete auth users")).Once()

	result, err := f.uc.DeleteAllAuthUsers(context.Background())

	assert.Equal(t, usecase.PurgeFailedCountError, result.State)
	requireCodes(t, err, domainErrors.ClassInternalServerError, "database-error")
	f.members.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestDeleteAllAuthUsers_Compensated(t *testing.T) {
	f := newPurgeFixture()
	f.authUsers.On("DeleteAll", mock.Anything).Return(f.deleted, nil).Once()
	f.members.On("DeleteAll", mock.Anything).Return(nil, dbErr("failed to delete members")).Once()
	f.authUsers.On("Restore", mock.Anything, f.deleted).Return(nil).Once()

	result, err := f.uc.DeleteAllAuthUsers(context.Background())

	assert.Equal(t, usecase.PurgeFailedCompensated, result.State)
	requireCodes(t, err, domainErrors.ClassInternalServerError, domainErrors.CodeDBError)
	assert.Equal(t, 1, f.tx.Calls)
	f.authUsers.AssertExpectations(t)
}

func TestDeleteAllAuthUsers_RestoresOriginalRows(t *testing.T) {
	f := newPurgeFixture()
	f.authUsers.On("DeleteAll", mock.Anything).Return(f.deleted, nil).Once()
	f.members.On("DeleteAll", mock.Anything).Return(nil, dbErr("failed to delete members")).Once()

	var restored []*entity.AuthUser
	f.authUsers.On("Restore", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { restored = args.Get(1).([]*entity.AuthUser) }).
		Return(nil).Once()

	_, _ = f.uc.DeleteAllAuthUsers(context.Background())

	require.Len(t, restored, len(f.deleted))
	for i := range f.deleted {
		assert.Equal(t, *f.deleted[i], *restored[i])
	}
}

func TestDeleteAllAuthUsers_Uncompensated(t *testing.T) {
	tests := []struct {
		name       string
		restoreErr error
		codes      []string
	}{
		{
			name:       "duplicate on reinsert",
			restoreErr: duplicateErr("failed to restore auth users"),
			codes:      []string{domainErrors.CodeUncompensatedDelete, domainErrors.CodeDeletedDuplication},
		},
		{
			name:       "database failure on reinsert",
			restoreErr: dbErr("failed to restore auth users"),
			codes:      []string{domainErrors.CodeUncompensatedDelete, "database-error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPurgeFixture()
			f.authUsers.On("DeleteAll", mock.Anything).Return(f.deleted, nil).Once()
			f.members.On("DeleteAll", mock.Anything).Return(nil, dbErr("failed to delete members")).Once()
			f.authUsers.On("Restore", mock.Anything, f.deleted).Return(tt.restoreErr).Once()

			result, err := f.uc.DeleteAllAuthUsers(context.Background())

			assert.Equal(t, usecase.PurgeFailedUncompensated, result.State)
			requireCodes(t, err, domainErrors.ClassInternalServerError, tt.codes...)
			assert.True(t, errors.Is(err, errBoom))
		})
	}
}

func TestDeleteAllAuthUsers_LockFailure(t *testing.T) {
	f := newPurgeFixture()
	f.locker.Err = errors.New("lock is held")

	result, err := f.uc.DeleteAllAuthUsers(context.Background())

	assert.Nil(t, result)
	requireCodes(t, err, domainErrors.ClassInternalServerError, domainErrors.CodeLock)
	f.authUsers.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestPurgeState_Terminal(t *testing.T) {
	terminal := []usecase.PurgeState{
		usecase.PurgeDone,
		usecase.PurgeFailedCountError,
		usecase.PurgeFailedCompensated,
		usecase.PurgeFailedUncompensated,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), s.String())
	}

	transient := []usecase.PurgeState{
		usecase.PurgeStart,
		usecase.PurgePrimaryDeleted,
		usecase.PurgeDependentsDeleted,
		usecase.PurgeCompensating,
	}
	for _, s := range transient {
		assert.False(t, s.Terminal(), s.String())
	}
}
