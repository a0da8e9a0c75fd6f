package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/dto"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

// AuthUserHandler обрабатывает запросы для учетных записей
type AuthUserHandler struct {
	authUserUseCase *usecase.AuthUserUseCase
	log             *zap.Logger
}

// NewAuthUserHandler создает новый handler для учетных записей
func NewAuthUserHandler(authUserUseCase *usecase.AuthUserUseCase, log *zap.Logger) *AuthUserHandler {
	return &AuthUserHandler{
		authUserUseCase: authUserUseCase,
		log:             log.Named("auth_user_handler"),
	}
}

// ListAuthUsers обрабатывает GET /auth-users
func (h *AuthUserHandler) ListAuthUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := parsePagination(w, r)
	if !ok {
		return
	}

	page, err := h.authUserUseCase.ListAuthUsers(r.Context(), p)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "auth users", dto.ToPaginated(page, dto.ToAuthUserDTO))
}

// CreateAuthUser обрабатывает POST /auth-users
func (h *AuthUserHandler) CreateAuthUser(w http.ResponseWriter, r *http.Request) {
	var req dto.NewAuthUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authUserUseCase.CreateAuthUser(r.Context(), dto.ToNewAuthUser(&req))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "auth user created", dto.ToAuthUserDTO(user))
}

// CreateAuthUsers обрабатывает POST /auth-users/bulk
func (h *AuthUserHandler) CreateAuthUsers(w http.ResponseWriter, r *http.Request) {
	var req []dto.NewAuthUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	users, err := h.authUserUseCase.CreateAuthUsers(r.Context(), dto.MapRequests(req, dto.ToNewAuthUser))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "auth users created", dto.MapAll(users, dto.ToAuthUserDTO))
}

// GetAuthUser обрабатывает GET /auth-users/{id}
func (h *AuthUserHandler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.authUserUseCase.GetAuthUser(r.Context(), id)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "auth user", dto.ToAuthUserDTO(user))
}

// DeleteAuthUser обрабатывает DELETE /auth-users/{id}
func (h *AuthUserHandler) DeleteAuthUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.authUserUseCase.DeleteAuthUser(r.Context(), id); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "auth user deleted", true)
}

// DeleteAllAuthUsers обрабатывает DELETE /auth-users; участники удаляются вместе с ними
func (h *AuthUserHandler) DeleteAllAuthUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := h.authUserUseCase.DeleteAllAuthUsers(r.Context()); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "all auth users deleted", true)
}
