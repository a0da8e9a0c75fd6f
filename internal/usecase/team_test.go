package usecase_test

import (
	"context"
	"strings"
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

func TestCreateTeams_ServerGeneratedIDs(t *testing.T) {
	repo := &mocks.TeamRepository{}
	tx := &mocks.TxManager{}

	var stored []*entity.Team
	repo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).([]*entity.Team) }).
		Return(nil).Once()

	teams, err := usecase.NewTeamUseCase(repo, tx, &mocks.Locker{}, zap.NewNop()).
		CreateTeams(context.Background(), []*entity.NewTeam{
			{Name: "core", Description: "platform"},
			{Name: "web"},
		})

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, stored, teams)
	assert.NotEqual(t, uuid.Nil, teams[0].ID)
	assert.NotEqual(t, teams[0].ID, teams[1].ID)
	assert.Equal(t, "platform", teams[0].Description)
	assert.Equal(t, 1, tx.Calls)
}

func TestCreateTeams_BatchFailure(t *testing.T) {
	repo := &mocks.TeamRepository{}
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(dbErr("failed to copy teams")).Once()

	_, err := usecase.NewTeamUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}, zap.NewNop()).
		CreateTeams(context.Background(), []*entity.NewTeam{{Name: "core"}})

	requireCodes(t, err, domainErrors.ClassInternalServerError, "database-error")
}

func TestCreateTeam_DescriptionTooLong(t *testing.T) {
	repo := &mocks.TeamRepository{}

	_, err := usecase.NewTeamUseCase(repo, &mocks.TxManager{}, &mocks.Locker{}, zap.NewNop()).
		CreateTeam(context.Background(), &entity.NewTeam{Name: "core", Description: strings.Repeat("d", 2049)})

	requireCodes(t, err, domainErrors.ClassBadRequest, "description-max-error")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteAllTeams_UsesTeamsLock(t *testing.T) {
	repo := &mocks.TeamRepository{}
	locker := &mocks.Locker{}
	repo.On("DeleteAll", mock.Anything).Return([]*entity.Team{}, nil).Once()

	count, err := usecase.NewTeamUseCase(repo, &mocks.TxManager{}, locker, zap.NewNop()).
		DeleteAllTeams(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, []string{"teams"}, locker.Keys)
}
