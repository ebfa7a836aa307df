package unitofwork

import (
	"context"

	"yatta-helin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	HandoffRequestRepository() contract.HandoffRequestRepository
	ReservationRequestRepository() contract.ReservationRequestRepository
}
