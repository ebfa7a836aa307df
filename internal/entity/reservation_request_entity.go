package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationRequest is written when a reservation draft completes. The
// sales team confirms it over the phone; the assistant never books.
type ReservationRequest struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	SessionKey    string
	UserName      string
	Service       string
	Date          string
	Time          string
	People        int
	Phone         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
