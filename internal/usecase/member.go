package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

// MemberUseCase реализует бизнес-логику для участников команд
type MemberUseCase struct {
	memberRepo repository.MemberRepository
	teamRepo   repository.TeamRepository
	txManager  repository.TransactionManager
	locker     repository.Locker
	log        *zap.Logger
}

// NewMemberUseCase создает новый usecase для участников
func NewMemberUseCase(
	memberRepo repository.MemberRepository,
	teamRepo repository.TeamRepository,
	txManager repository.TransactionManager,
	locker repository.Locker,
	log *zap.Logger,
) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		txManager:  txManager,
		locker:     locker,
		log:        log.Named("members"),
	}
}

// ListMembers возвращает страницу участников
func (uc *MemberUseCase) ListMembers(ctx context.Context, p entity.Pagination) (*entity.Page[entity.Member], error) {
	return paginate[entity.Member](ctx, uc.memberRepo, p, "members")
}

// CreateMember назначает участника в команду
func (uc *MemberUseCase) CreateMember(ctx context.Context, newMember *entity.NewMember) (*entity.Member, error) {
	if err := entity.Validate(newMember); err != nil {
		return nil, err
	}

	member := buildMember(newMember)
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := getByID[entity.Team](ctx, uc.teamRepo, member.TeamID, "team"); err != nil {
			return err
		}
		return uc.memberRepo.Create(ctx, member)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	uc.log.Info("member created",
		zap.Stringer("member_id", member.ID),
		zap.Stringer("team_id", member.TeamID),
		zap.Stringer("user_id", member.UserID),
	)
	return member, nil
}

// CreateMembers назначает пакет участников в одной транзакции
func (uc *MemberUseCase) CreateMembers(ctx context.Context, newMembers []*entity.NewMember) ([]*entity.Member, error) {
	if err := entity.ValidateAll(newMembers); err != nil {
		return nil, err
	}

	members := make([]*entity.Member, 0, len(newMembers))
	for _, nm := range newMembers {
		members = append(members, buildMember(nm))
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ensureTeams(ctx, members); err != nil {
			return err
		}
		return uc.memberRepo.CreateBatch(ctx, members)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create members: %w", err)
	}

	uc.log.Info("members created", zap.Int("count", len(members)))
	return members, nil
}

// GetMember возвращает участника по ID
func (uc *MemberUseCase) GetMember(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return getByID[entity.Member](ctx, uc.memberRepo, id, "member")
}

// DeleteMember удаляет участника по ID
func (uc *MemberUseCase) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if err := deleteByID[entity.Member](ctx, uc.memberRepo, id, "member"); err != nil {
		return err
	}
	uc.log.Info("member deleted", zap.Stringer("member_id", id))
	return nil
}

// DeleteAllMembers удаляет всех участников
func (uc *MemberUseCase) DeleteAllMembers(ctx context.Context) (int, error) {
	count, err := deleteAll[entity.Member](ctx, uc.locker, uc.memberRepo, lockKeyMembers)
	if err != nil {
		return 0, err
	}
	uc.log.Info("all members deleted", zap.Int("count", count))
	return count, nil
}

// MemberEmails возвращает имена и почты участников команды
func (uc *MemberUseCase) MemberEmails(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberEmail, error) {
	if _, err := getByID[entity.Team](ctx, uc.teamRepo, teamID, "team"); err != nil {
		return nil, err
	}

	emails, err := uc.memberRepo.ListEmailsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member emails: %w", err)
	}
	return orEmpty(emails), nil
}

// MemberInfos возвращает карточки участников команды
func (uc *MemberUseCase) MemberInfos(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberInfo, error) {
	if _, err := getByID[entity.Team](ctx, uc.teamRepo, teamID, "team"); err != nil {
		return nil, err
	}

	infos, err := uc.memberRepo.ListInfosByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member infos: %w", err)
	}
	return orEmpty(infos), nil
}

// MemberNames возвращает имена участников команды
func (uc *MemberUseCase) MemberNames(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberName, error) {
	if _, err := getByID[entity.Team](ctx, uc.teamRepo, teamID, "team"); err != nil {
		return nil, err
	}

	names, err := uc.memberRepo.ListNamesByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member names: %w", err)
	}
	return orEmpty(names), nil
}

// ensureTeams проверяет, что каждая команда пакета существует
func (uc *MemberUseCase) ensureTeams(ctx context.Context, members []*entity.Member) error {
	checked := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		if _, ok := checked[m.TeamID]; ok {
			continue
		}
		if _, err := getByID[entity.Team](ctx, uc.teamRepo, m.TeamID, "team"); err != nil {
			return err
		}
		checked[m.TeamID] = struct{}{}
	}
	return nil
}

func buildMember(nm *entity.NewMember) *entity.Member {
	return &entity.Member{
		ID:          uuid.New(),
		TeamID:      nm.TeamID,
		UserID:      nm.UserID,
		Name:        nm.Name,
		IdentityNum: nm.IdentityNum,
		Role:        nm.Role,
		AssignedAt:  now(),
		ExpiredAt:   nm.ExpiredAt,
	}
}

func orEmpty[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
