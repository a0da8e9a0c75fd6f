package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/dto"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

// TeamHandler обрабатывает запросы для команд
type TeamHandler struct {
	teamUseCase *usecase.TeamUseCase
	log         *zap.Logger
}

// NewTeamHandler создает новый handler для команд
func NewTeamHandler(teamUseCase *usecase.TeamUseCase, log *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamUseCase: teamUseCase,
		log:         log.Named("team_handler"),
	}
}

// ListTeams обрабатывает GET /teams
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	p, ok := parsePagination(w, r)
	if !ok {
		return
	}

	page, err := h.teamUseCase.ListTeams(r.Context(), p)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "teams", dto.ToPaginated(page, dto.ToTeamDTO))
}

// CreateTeam обрабатывает POST /teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req dto.NewTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	team, err := h.teamUseCase.CreateTeam(r.Context(), dto.ToNewTeam(&req))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "team created", dto.ToTeamDTO(team))
}

// CreateTeams обрабатывает POST /teams/bulk
func (h *TeamHandler) CreateTeams(w http.ResponseWriter, r *http.Request) {
	var req []dto.NewTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	teams, err := h.teamUseCase.CreateTeams(r.Context(), dto.MapRequests(req, dto.ToNewTeam))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "teams created", dto.MapAll(teams, dto.ToTeamDTO))
}

// GetTeam обрабатывает GET /teams/{id}
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	team, err := h.teamUseCase.GetTeam(r.Context(), id)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "team", dto.ToTeamDTO(team))
}

// DeleteTeam обрабатывает DELETE /teams/{id}
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.teamUseCase.DeleteTeam(r.Context(), id); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "team deleted", true)
}

// DeleteAllTeams обрабатывает DELETE /teams
func (h *TeamHandler) DeleteAllTeams(w http.ResponseWriter, r *http.Request) {
	count, err := h.teamUseCase.DeleteAllTeams(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "all teams deleted", count)
}
