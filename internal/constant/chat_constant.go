package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	HandoffStatusOpen   = "open"
	HandoffStatusClosed = "closed"

	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"

	// Watermill topics for the in-process event fan-out.
	HandoffRequestedTopic     = "helin.handoff.requested"
	ReservationCompletedTopic = "helin.reservation.completed"
)
