package events

import "time"

// Event is the contract for everything published on the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "HANDOFF_REQUESTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeHandoffRequested     = "HANDOFF_REQUESTED"
	TypeReservationCompleted = "RESERVATION_COMPLETED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewHandoffRequested is published on the first escalation of a session.
func NewHandoffRequested(sessionKey, userName, triggerMessage string) Event {
	return BaseEvent{
		Type: TypeHandoffRequested,
		Data: map[string]interface{}{
			"session_key":     sessionKey,
			"user_name":       userName,
			"trigger_message": triggerMessage,
		},
		OccurredAt: time.Now(),
	}
}

// NewReservationCompleted is published when a reservation draft fills its
// last slot.
func NewReservationCompleted(sessionKey, userName, service, date, timeSlot, phone string, people int) Event {
	return BaseEvent{
		Type: TypeReservationCompleted,
		Data: map[string]interface{}{
			"session_key": sessionKey,
			"user_name":   userName,
			"service":     service,
			"date":        date,
			"time":        timeSlot,
			"people":      people,
			"phone":       phone,
		},
		OccurredAt: time.Now(),
	}
}
