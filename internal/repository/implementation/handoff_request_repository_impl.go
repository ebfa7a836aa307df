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

type HandoffRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewHandoffRequestRepository(db *gorm.DB) contract.HandoffRequestRepository {
	return &HandoffRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *HandoffRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HandoffRequestRepositoryImpl) Create(ctx context.Context, request *entity.HandoffRequest) error {
	m := r.mapper.HandoffRequestToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.HandoffRequestToEntity(m)
	return nil
}

func (r *HandoffRequestRepositoryImpl) Update(ctx context.Context, request *entity.HandoffRequest) error {
	m := r.mapper.HandoffRequestToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.HandoffRequestToEntity(m)
	return nil
}

func (r *HandoffRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.HandoffRequest{}, id).Error
}

func (r *HandoffRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HandoffRequest, error) {
	var m model.HandoffRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.HandoffRequestToEntity(&m), nil
}

func (r *HandoffRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HandoffRequest, error) {
	var models []*model.HandoffRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.HandoffRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.HandoffRequestToEntity(m)
	}
	return entities, nil
}

func (r *HandoffRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.HandoffRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
