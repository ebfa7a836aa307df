package contract

import (
	"context"

	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HandoffRequestRepository interface {
	Create(ctx context.Context, request *entity.HandoffRequest) error
	Update(ctx context.Context, request *entity.HandoffRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HandoffRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HandoffRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
