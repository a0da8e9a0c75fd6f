package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// TeamUseCase реализует бизнес-логику для команд
type TeamUseCase struct {
	teamRepo  repository.TeamRepository
	txManager repository.TransactionManager
	locker    repository.Locker
	log       *zap.Logger
}

// NewTeamUseCase создает новый usecase для команд
func NewTeamUseCase(
	teamRepo repository.TeamRepository,
	txManager repository.TransactionManager,
	locker repository.Locker,
	log *zap.Logger,
) *TeamUseCase {
	return &TeamUseCase{
		teamRepo:  teamRepo,
		txManager: txManager,
		locker:    locker,
		log:       log.Named("teams"),
	}
}

// ListTeams возвращает страницу команд
func (uc *TeamUseCase) ListTeams(ctx context.Context, p entity.Pagination) (*entity.Page[entity.Team], error) {
	return paginate[entity.Team](ctx, uc.teamRepo, p, "teams")
}

// CreateTeam создает команду
func (uc *TeamUseCase) CreateTeam(ctx context.Context, newTeam *entity.NewTeam) (*entity.Team, error) {
	if err := entity.Validate(newTeam); err != nil {
		return nil, err
	}

	team := buildTeam(newTeam)
	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	uc.log.Info("team created", zap.Stringer("team_id", team.ID), zap.String("name", team.Name))
	return team, nil
}

// CreateTeams создает пакет команд; идентификаторы генерируются сервисом
func (uc *TeamUseCase) CreateTeams(ctx context.Context, newTeams []*entity.NewTeam) ([]*entity.Team, error) {
	if err := entity.ValidateAll(newTeams); err != nil {
		return nil, err
	}

	teams := make([]*entity.Team, 0, len(newTeams))
	for _, nt := range newTeams {
		teams = append(teams, buildTeam(nt))
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.teamRepo.CreateBatch(ctx, teams)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create teams: %w", err)
	}

	uc.log.Info("teams created", zap.Int("count", len(teams)))
	return teams, nil
}

// GetTeam возвращает команду по ID
func (uc *TeamUseCase) GetTeam(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	return getByID[entity.Team](ctx, uc.teamRepo, id, "team")
}

// DeleteTeam удаляет команду по ID
func (uc *TeamUseCase) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := deleteByID[entity.Team](ctx, uc.teamRepo, id, "team"); err != nil {
		return err
	}
	uc.log.Info("team deleted", zap.Stringer("team_id", id))
	return nil
}

// DeleteAllTeams удаляет все команды
func (uc *TeamUseCase) DeleteAllTeams(ctx context.Context) (int, error) {
	count, err := deleteAll[entity.Team](ctx, uc.locker, uc.teamRepo, lockKeyTeams)
	if err != nil {
		return 0, err
	}
	uc.log.Info("all teams deleted", zap.Int("count", count))
	return count, nil
}

func buildTeam(nt *entity.NewTeam) *entity.Team {
	return &entity.Team{
		ID:          uuid.New(),
		Name:        nt.Name,
		Description: nt.Description,
		CreatedAt:   now(),
	}
}
