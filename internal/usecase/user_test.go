package usecase_test

import (
	"context"
	"errors"
	"testing"

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

func newUserUseCase(repo *mocks.UserRepository, tx *mocks.TxManager, locker *mocks.Locker) *usecase.UserUseCase {
	return usecase.NewUserUseCase(repo, tx, locker, zap.NewNop())
}

func TestCreateUser_Success(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()

	user, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}).
		CreateUser(context.Background(), &entity.NewUser{Email: "alice@example.com", Name: "Alice"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	repo := &mocks.UserRepository{}

	_, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}).
		CreateUser(context.Background(), &entity.NewUser{Email: "not-an-email", Name: "Alice"})

	requireCodes(t, err, domainErrors.ClassBadRequest, "email-format-error")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(duplicateErr("failed to insert user")).Once()

	_, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}).
		CreateUser(context.Background(), &entity.NewUser{Email: "alice@example.com", Name: "Alice"})

	requireCodes(t, err, domainErrors.ClassBadRequest, domainErrors.CodeDuplication)
}

func TestCreateUsers_ValidatesWholeBatch(t *testing.T) {
	repo := &mocks.UserRepository{}
	tx := &mocks.TxManager{}

	_, err := newUserUseCase(repo, tx, &mocks.Locker{}).CreateUsers(context.Background(), []*entity.NewUser{
		{Email: "ok@example.com", Name: "Ok"},
		{Email: "broken", Name: ""},
	})

	requireCodes(t, err, domainErrors.ClassBadRequest, "email-format-error", "name-required-error")
	assert.Zero(t, tx.Calls)
}

func TestCreateUsers_UniqueIDs(t *testing.T) {
	repo := &mocks.UserRepository{}
	tx := &mocks.TxManager{}
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Once()

	users, err := newUserUseCase(repo, tx, &mocks.Locker{}).CreateUsers(context.Background(), []*entity.NewUser{
		{Email: "a@example.com", Name: "A"},
		{Email: "b@example.com", Name: "B"},
	})

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.NotEqual(t, users[0].ID, users[1].ID)
	assert.Equal(t, 1, tx.Calls)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := &mocks.UserRepository{}
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, notFoundErr("failed to get user")).Once()

	_, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}).GetUser(context.Background(), id)

	requireCodes(t, err, domainErrors.ClassNotFound, domainErrors.CodeObjectNotFound)
}

func TestDeleteUser_Twice(t *testing.T) {
	repo := &mocks.UserRepository{}
	id := uuid.New()
	repo.On("DeleteByID", mock.Anything, id).Return(true, nil).Once()
	repo.On("DeleteByID", mock.Anything, id).Return(false, nil).Once()

	uc := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{})

	require.NoError(t, uc.DeleteUser(context.Background(), id))

	err := uc.DeleteUser(context.Background(), id)
	requireCodes(t, err, domainErrors.ClassNotFound, domainErrors.CodeObjectNotFound)
}

func TestDeleteAllUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mocks.UserRepository{}
		locker := &mocks.Locker{}
		repo.On("DeleteAll", mock.Anything).Return([]*entity.User{{}, {}}, nil).Once()

		count, err := newUserUseCase(repo, &mocks.TxManager{}, locker).DeleteAllUsers(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, []string{"users"}, locker.Keys)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mocks.UserRepository{}
		repo.On("DeleteAll", mock.Anything).Return(nil, dbErr("failed to delete users")).Once()

		_, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}).DeleteAllUsers(context.Background())

		requireCodes(t, err, domainErrors.ClassInternalServerError, domainErrors.CodeDBError)
	})

	t.Run("lock failure", func(t *testing.T) {
		repo := &mocks.UserRepository{}

		_, err := newUserUseCase(repo, &mocks.TxManager{}, &mocks.Locker{Err: errors.New("busy")}).
			DeleteAllUsers(context.Background())

		requireCodes(t, err, domainErrors.ClassInternalServerError, domainErrors.CodeLock)
		repo.AssertNotCalled(t, "DeleteAll", mock.Anything)
	})
}
