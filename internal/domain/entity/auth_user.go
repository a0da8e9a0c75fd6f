package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser основная сущность каскадного удаления; участники команд ссылаются на неё
type AuthUser struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAuthUser данные для регистрации. Пароль хранится только в виде хеша.
type NewAuthUser struct {
	Email    string `validate:"required,email,max=320"`
	Name     string `validate:"required,max=255"`
	Password string `validate:"required,min=8,max=72"`
}
