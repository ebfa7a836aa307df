package entity

import (
	"time"

	"github.com/google/uuid"
)

// HandoffRequest is opened once per session when the assistant escalates
// to a human operator.
type HandoffRequest struct {
	Id             uuid.UUID
	ChatSessionId  uuid.UUID
	SessionKey     string
	UserName       string
	TriggerMessage string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
