package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/dto"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

// MemberHandler обрабатывает запросы для участников команд
type MemberHandler struct {
	memberUseCase *usecase.MemberUseCase
	log           *zap.Logger
}

// NewMemberHandler создает новый handler для участников
func NewMemberHandler(memberUseCase *usecase.MemberUseCase, log *zap.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
		log:           log.Named("member_handler"),
	}
}

// ListMembers обрабатывает GET /members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	p, ok := parsePagination(w, r)
	if !ok {
		return
	}

	page, err := h.memberUseCase.ListMembers(r.Context(), p)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "members", dto.ToPaginated(page, dto.ToMemberDTO))
}

// CreateMember обрабатывает POST /members
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.NewMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.memberUseCase.CreateMember(r.Context(), dto.ToNewMember(&req))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "member created", dto.ToMemberDTO(member))
}

// CreateMembers обрабатывает POST /members/bulk
func (h *MemberHandler) CreateMembers(w http.ResponseWriter, r *http.Request) {
	var req []dto.NewMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	members, err := h.memberUseCase.CreateMembers(r.Context(), dto.MapRequests(req, dto.ToNewMember))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "members created", dto.MapAll(members, dto.ToMemberDTO))
}

// GetMember обрабатывает GET /members/{id}
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	member, err := h.memberUseCase.GetMember(r.Context(), id)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "member", dto.ToMemberDTO(member))
}

// DeleteMember обрабатывает DELETE /members/{id}
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.memberUseCase.DeleteMember(r.Context(), id); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "member deleted", true)
}

// DeleteAllMembers обрабатывает DELETE /members
func (h *MemberHandler) DeleteAllMembers(w http.ResponseWriter, r *http.Request) {
	count, err := h.memberUseCase.DeleteAllMembers(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "all members deleted", count)
}

// MemberEmails обрабатывает GET /teams/{id}/members/emails
func (h *MemberHandler) MemberEmails(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseID(w, r)
	if !ok {
		return
	}

	emails, err := h.memberUseCase.MemberEmails(r.Context(), teamID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "member emails", dto.MapAll(emails, dto.ToMemberEmailDTO))
}

// MemberInfos обрабатывает GET /teams/{id}/members/infos
func (h *MemberHandler) MemberInfos(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseID(w, r)
	if !ok {
		return
	}

	infos, err := h.memberUseCase.MemberInfos(r.Context(), teamID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "member infos", dto.MapAll(infos, dto.ToMemberInfoDTO))
}

// MemberNames обрабатывает GET /teams/{id}/members/names
func (h *MemberHandler) MemberNames(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseID(w, r)
	if !ok {
		return
	}

	names, err := h.memberUseCase.MemberNames(r.Context(), teamID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondSuccess(w, http.StatusOK, "member names", dto.MapAll(names, dto.ToMemberNameDTO))
}
