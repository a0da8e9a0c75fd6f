package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

type NewUser struct {
	Email string `validate:"required,email,max=320"`
	Name  string `validate:"required,max=255"`
}
