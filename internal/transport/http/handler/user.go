package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/dto"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

// UserHandler обрабатывает запросы для пользователей
type UserHandler struct {
	userUseCase *usecase.UserUseCase
	log         *zap.Logger
}

// NewUserHandler создает новый handler для пользователей
func NewUserHandler(userUseCase *usecase.UserUseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		log:         log.Named("user_handler"),
	}
}

// ListUsers обрабатывает GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := parsePagination(w, r)
	if !ok {
		return
	}

	page, err := h.userUseCase.ListUsers(r.Context(), p)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "users", dto.ToPaginated(page, dto.ToUserDTO))
}

// CreateUser обрабатывает POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.NewUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), dto.ToNewUser(&req))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "user created", dto.ToUserDTO(user))
}

// CreateUsers обрабатывает POST /users/bulk
func (h *UserHandler) CreateUsers(w http.ResponseWriter, r *http.Request) {
	var req []dto.NewUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	users, err := h.userUseCase.CreateUsers(r.Context(), dto.MapRequests(req, dto.ToNewUser))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "users created", dto.MapAll(users, dto.ToUserDTO))
}

// GetUser обрабатывает GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "user", dto.ToUserDTO(user))
}

// DeleteUser обрабатывает DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "user deleted", true)
}

// DeleteAllUsers обрабатывает DELETE /users
func (h *UserHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	count, err := h.userUseCase.DeleteAllUsers(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "all users deleted", count)
}
