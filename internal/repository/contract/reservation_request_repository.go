package contract

import (
	"context"

	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReservationRequestRepository interface {
	Create(ctx context.Context, request *entity.ReservationRequest) error
	Update(ctx context.Context, request *entity.ReservationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReservationRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReservationRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
