package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// UserUseCase реализует бизнес-логику для пользователей
type UserUseCase struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	locker    repository.Locker
	log       *zap.Logger
}

// NewUserUseCase создает новый usecase для пользователей
func NewUserUseCase(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	locker repository.Locker,
	log *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		txManager: txManager,
		locker:    locker,
		log:       log.Named("users"),
	}
}

// ListUsers возвращает страницу пользователей и их общее число
func (uc *UserUseCase) ListUsers(ctx context.Context, p entity.Pagination) (*entity.Page[entity.User], error) {
	return paginate[entity.User](ctx, uc.userRepo, p, "users")
}

// CreateUser проверяет и сохраняет нового пользователя
func (uc *UserUseCase) CreateUser(ctx context.Context, newUser *entity.NewUser) (*entity.User, error) {
	if err := entity.Validate(newUser); err != nil {
		return nil, err
	}

	user := buildUser(newUser)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.log.Info("user created", zap.Stringer("user_id", user.ID))
	return user, nil
}

// CreateUsers сохраняет пакет пользователей в одной транзакции
func (uc *UserUseCase) CreateUsers(ctx context.Context, newUsers []*entity.NewUser) ([]*entity.User, error) {
	if err := entity.ValidateAll(newUsers); err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(newUsers))
	for _, nu := range newUsers {
		users = append(users, buildUser(nu))
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.userRepo.CreateBatch(ctx, users)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}

	uc.log.Info("users created", zap.Int("count", len(users)))
	return users, nil
}

// GetUser возвращает пользователя по ID
func (uc *UserUseCase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return getByID[entity.User](ctx, uc.userRepo, id, "user")
}

// DeleteUser удаляет пользователя по ID
func (uc *UserUseCase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := deleteByID[entity.User](ctx, uc.userRepo, id, "user"); err != nil {
		return err
	}
	uc.log.Info("user deleted", zap.Stringer("user_id", id))
	return nil
}

// DeleteAllUsers удаляет всех пользователей
func (uc *UserUseCase) DeleteAllUsers(ctx context.Context) (int, error) {
	count, err := deleteAll[entity.User](ctx, uc.locker, uc.userRepo, lockKeyUsers)
	if err != nil {
		return 0, err
	}
	uc.log.Info("all users deleted", zap.Int("count", count))
	return count, nil
}

func buildUser(nu *entity.NewUser) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     nu.Email,
		Name:      nu.Name,
		CreatedAt: now(),
	}
}
