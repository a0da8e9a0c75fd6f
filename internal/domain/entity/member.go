package entity

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID               uuid.UUID
	TeamID           uuid.UUID
	UserID           uuid.UUID
	Name             string
	IdentityNum      string
	Role             string
	AssignedAt       time.Time
	ExpiredAt        *time.Time
	ModificationDate *time.Time
}

type NewMember struct {
	TeamID      uuid.UUID `validate:"required"`
	UserID      uuid.UUID `validate:"required"`
	Name        string    `validate:"required,max=255"`
	IdentityNum string    `validate:"required,max=64"`
	Role        string    `validate:"required,max=64"`
	ExpiredAt   *time.Time
}

// MemberEmail участник команды с почтой его пользователя
type MemberEmail struct {
	Name  string
	Email string
}

type MemberInfo struct {
	Name        string
	Email       string
	IdentityNum string
	Role        string
}

type MemberName struct {
	Name string
}
