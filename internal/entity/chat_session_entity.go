package entity

import (
	"time"

	"yatta-helin-be/pkg/store"

	"github.com/google/uuid"
)

// ChatSession is the persisted record of one visitor conversation. The
// live session context is mirrored here so an operator can reconstruct
// the conversation state after the in-memory session expires.
type ChatSession struct {
	Id              uuid.UUID
	SessionKey      string
	UserName        string
	SelectedService string
	Mode            string
	Context         store.SessionContext
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
