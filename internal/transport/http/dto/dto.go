package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

// SuccessResponse обертка любого успешного ответа
type SuccessResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// PaginatedResponse страница элементов и общее число строк
type PaginatedResponse[T any] struct {
	Items []T   `json:"items"`
	Count int64 `json:"count"`
}

// UserDTO представляет пользователя
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// NewUserRequest запрос на создание пользователя
type NewUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthUserDTO представляет учетную запись без хеша пароля
type AuthUserDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// NewAuthUserRequest запрос на регистрацию учетной записи
type NewAuthUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// TeamDTO представляет команду
type TeamDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewTeamRequest запрос на создание команды
type NewTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MemberDTO представляет участника команды
type MemberDTO struct {
	ID               uuid.UUID  `json:"id"`
	TeamID           uuid.UUID  `json:"team_id"`
	UserID           uuid.UUID  `json:"user_id"`
	Name             string     `json:"name"`
	IdentityNum      string     `json:"identity_num"`
	Role             string     `json:"role"`
	AssignedAt       time.Time  `json:"assigned_at"`
	ExpiredAt        *time.Time `json:"expired_at"`
	ModificationDate *time.Time `json:"modification_date"`
}

// NewMemberRequest запрос на назначение участника
type NewMemberRequest struct {
	TeamID      uuid.UUID  `json:"team_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	IdentityNum string     `json:"identity_num"`
	Role        string     `json:"role"`
	ExpiredAt   *time.Time `json:"expired_at"`
}

type MemberEmailDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MemberInfoDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	IdentityNum string `json:"identity_num"`
	Role        string `json:"role"`
}

type MemberNameDTO struct {
	Name string `json:"name"`
}

// Маппинг функции

// ToPaginated преобразует страницу сущностей в DTO
func ToPaginated[E any, D any](page *entity.Page[E], convert func(*E) D) PaginatedResponse[D] {
	return PaginatedResponse[D]{
		Items: MapAll(page.Items, convert),
		Count: page.Count,
	}
}

// MapAll преобразует список сущностей в список DTO
func MapAll[E any, D any](items []*E, convert func(*E) D) []D {
	result := make([]D, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}

// MapRequests преобразует список запросов в список сущностей
func MapRequests[R any, E any](requests []R, convert func(*R) *E) []*E {
	result := make([]*E, 0, len(requests))
	for i := range requests {
		result = append(result, convert(&requests[i]))
	}
	return result
}

func ToUserDTO(u *entity.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Name: u.Name}
}

func ToNewUser(r *NewUserRequest) *entity.NewUser {
	return &entity.NewUser{Email: r.Email, Name: r.Name}
}

func ToAuthUserDTO(u *entity.AuthUser) AuthUserDTO {
	return AuthUserDTO{ID: u.ID, Email: u.Email, Name: u.Name}
}

func ToNewAuthUser(r *NewAuthUserRequest) *entity.NewAuthUser {
	return &entity.NewAuthUser{Email: r.Email, Name: r.Name, Password: r.Password}
}

func ToTeamDTO(t *entity.Team) TeamDTO {
	return TeamDTO{ID: t.ID, Name: t.Name, Description: t.Description}
}

func ToNewTeam(r *NewTeamRequest) *entity.NewTeam {
	return &entity.NewTeam{Name: r.Name, Description: r.Description}
}

func ToMemberDTO(m *entity.Member) MemberDTO {
	return MemberDTO{
		ID:               m.ID,
		TeamID:           m.TeamID,
		UserID:           m.UserID,
		Name:             m.Name,
		IdentityNum:      m.IdentityNum,
		Role:             m.Role,
		AssignedAt:       m.AssignedAt,
		ExpiredAt:        m.ExpiredAt,
		ModificationDate: m.ModificationDate,
	}
}

func ToNewMember(r *NewMemberRequest) *entity.NewMember {
	return &entity.NewMember{
		TeamID:      r.TeamID,
		UserID:      r.UserID,
		Name:        r.Name,
		IdentityNum: r.IdentityNum,
		Role:        r.Role,
		ExpiredAt:   r.ExpiredAt,
	}
}

func ToMemberEmailDTO(m *entity.MemberEmail) MemberEmailDTO {
	return MemberEmailDTO{Name: m.Name, Email: m.Email}
}

func ToMemberInfoDTO(m *entity.MemberInfo) MemberInfoDTO {
	return MemberInfoDTO{Name: m.Name, Email: m.Email, IdentityNum: m.IdentityNum, Role: m.Role}
}

func ToMemberNameDTO(m *entity.MemberName) MemberNameDTO {
	return MemberNameDTO{Name: m.Name}
}
