package entity

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

type NewTeam struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=2048"`
}
