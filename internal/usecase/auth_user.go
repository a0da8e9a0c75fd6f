package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// AuthUserUseCase реализует бизнес-логику для учетных записей
type AuthUserUseCase struct {
	authUserRepo repository.AuthUserRepository
	memberRepo   repository.MemberRepository
	txManager    repository.TransactionManager
	locker       repository.Locker
	hashCost     int
	log          *zap.Logger
}

// NewAuthUserUseCase создает новый usecase для учетных записей
func NewAuthUserUseCase(
	authUserRepo repository.AuthUserRepository,
	memberRepo repository.MemberRepository,
	txManager repository.TransactionManager,
	locker repository.Locker,
	log *zap.Logger,
) *AuthUserUseCase {
	return &AuthUserUseCase{
		authUserRepo: authUserRepo,
		memberRepo:   memberRepo,
		txManager:    txManager,
		locker:       locker,
		hashCost:     bcrypt.DefaultCost,
		log:          log.Named("auth_users"),
	}
}

// WithHashCost меняет стоимость bcrypt; в тестах используется bcrypt.MinCost
func (uc *AuthUserUseCase) WithHashCost(cost int) *AuthUserUseCase {
	uc.hashCost = cost
	return uc
}

// ListAuthUsers возвращает страницу учетных записей
func (uc *AuthUserUseCase) ListAuthUsers(ctx context.Context, p entity.Pagination) (*entity.Page[entity.AuthUser], error) {
	return paginate[entity.AuthUser](ctx, uc.authUserRepo, p, "auth users")
}

// CreateAuthUser регистрирует учетную запись
func (uc *AuthUserUseCase) CreateAuthUser(ctx context.Context, newUser *entity.NewAuthUser) (*entity.AuthUser, error) {
	if err := entity.Validate(newUser); err != nil {
		return nil, err
	}

	user, err := uc.buildAuthUser(newUser)
	if err != nil {
		return nil, err
	}

	if err := uc.authUserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create auth user: %w", err)
	}

	uc.log.Info("auth user created", zap.Stringer("auth_user_id", user.ID))
	return user, nil
}

// CreateAuthUsers регистрирует пакет учетных записей в одной транзакции
func (uc *AuthUserUseCase) CreateAuthUsers(ctx context.Context, newUsers []*entity.NewAuthUser) ([]*entity.AuthUser, error) {
	if err := entity.ValidateAll(newUsers); err != nil {
		return nil, err
	}

	users := make([]*entity.AuthUser, 0, len(newUsers))
	for _, nu := range newUsers {
		user, err := uc.buildAuthUser(nu)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.authUserRepo.CreateBatch(ctx, users)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth users: %w", err)
	}

	uc.log.Info("auth users created", zap.Int("count", len(users)))
	return users, nil
}

// GetAuthUser возвращает учетную запись по ID
func (uc *AuthUserUseCase) GetAuthUser(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	return getByID[entity.AuthUser](ctx, uc.authUserRepo, id, "auth user")
}

// DeleteAuthUser удаляет учетную запись по ID
func (uc *AuthUserUseCase) DeleteAuthUser(ctx context.Context, id uuid.UUID) error {
	if err := deleteByID[entity.AuthUser](ctx, uc.authUserRepo, id, "auth user"); err != nil {
		return err
	}
	uc.log.Info("auth user deleted", zap.Stringer("auth_user_id", id))
	return nil
}

func (uc *AuthUserUseCase) buildAuthUser(nu *entity.NewAuthUser) (*entity.AuthUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), uc.hashCost)
	if err != nil {
		return nil, domainErrors.NewInternal("failed to hash password", err, domainErrors.CodePasswordHash)
	}

	return &entity.AuthUser{
		ID:           uuid.New(),
		Email:        nu.Email,
		Name:         nu.Name,
		PasswordHash: string(hash),
		CreatedAt:    now(),
	}, nil
}
