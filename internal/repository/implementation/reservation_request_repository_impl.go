package implementation

import (
	"context"
	"errors"

	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/mapper"
	"yatta-helin-be/internal/model"
	"yatta-helin-be/internal/repository/contract"
	"yatta-helin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewReservationRequestRepository(db *gorm.DB) contract.ReservationRequestRepository {
	return &ReservationRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ReservationRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReservationRequestRepositoryImpl) Create(ctx context.Context, request *entity.ReservationRequest) error {
	m := r.mapper.ReservationRequestToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ReservationRequestToEntity(m)
	return nil
}

func (r *ReservationRequestRepositoryImpl) Update(ctx context.Context, request *entity.ReservationRequest) error {
	m := r.mapper.ReservationRequestToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ReservationRequestToEntity(m)
	return nil
}

func (r *ReservationRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReservationRequest{}, id).Error
}

func (r *ReservationRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReservationRequest, error) {
	var m model.ReservationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ReservationRequestToEntity(&m), nil
}

func (r *ReservationRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReservationRequest, error) {
	var models []*model.ReservationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ReservationRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReservationRequestToEntity(m)
	}
	return entities, nil
}

func (r *ReservationRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReservationRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
