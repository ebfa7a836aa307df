package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionKey resolves the chat session for a client-held session key.
type BySessionKey struct {
	SessionKey string
}

func (s BySessionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_key = ?", s.SessionKey)
}

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// ByStatus filters handoff and reservation requests on their workflow state.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
