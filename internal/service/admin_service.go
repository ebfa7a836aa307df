package service

import (
	"context"
	"fmt"
	"time"

	"yatta-helin-be/internal/dto"
	"yatta-helin-be/internal/pkg/logger"
	"yatta-helin-be/internal/repository/specification"
	"yatta-helin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetSessions(ctx context.Context, page, limit int) ([]*dto.ChatSessionResponse, error)
	GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	GetHandoffs(ctx context.Context, page, limit int, status string) ([]*dto.HandoffRequestResponse, error)
	GetReservations(ctx context.Context, page, limit int, status string) ([]*dto.ReservationRequestResponse, error)
	UpdateHandoffStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) error
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func listSpecs(page, limit int, status string) []specification.Specification {
	var specs []specification.Specification
	if status != "" && status != "all" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	return specs
}

func (s *adminService) GetSessions(ctx context.Context, page, limit int) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, listSpecs(page, limit, "")...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatSessionResponse, len(sessions))
	for i, c := range sessions {
		res[i] = &dto.ChatSessionResponse{
			Id:              c.Id,
			SessionKey:      c.SessionKey,
			UserName:        c.UserName,
			SelectedService: c.SelectedService,
			Mode:            c.Mode,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
		}
	}
	return res, nil
}

func (s *adminService) GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.GetChatHistoryResponse, len(messages))
	for i, m := range messages {
		res[i] = &dto.GetChatHistoryResponse{
			Id:         m.Id,
			Role:       m.Role,
			Content:    m.Content,
			Intent:     m.Intent,
			NeedsHuman: m.NeedsHuman,
			CreatedAt:  m.CreatedAt,
		}
	}
	return res, nil
}

func (s *adminService) GetHandoffs(ctx context.Context, page, limit int, status string) ([]*dto.HandoffRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	handoffs, err := uow.HandoffRequestRepository().FindAll(ctx, listSpecs(page, limit, status)...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.HandoffRequestResponse, len(handoffs))
	for i, h := range handoffs {
		res[i] = &dto.HandoffRequestResponse{
			Id:             h.Id,
			SessionKey:     h.SessionKey,
			UserName:       h.UserName,
			TriggerMessage: h.TriggerMessage,
			Status:         h.Status,
			CreatedAt:      h.CreatedAt,
		}
	}
	return res, nil
}

func (s *adminService) GetReservations(ctx context.Context, page, limit int, status string) ([]*dto.ReservationRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reservations, err := uow.ReservationRequestRepository().FindAll(ctx, listSpecs(page, limit, status)...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReservationRequestResponse, len(reservations))
	for i, r := range reservations {
		res[i] = &dto.ReservationRequestResponse{
			Id:         r.Id,
			SessionKey: r.SessionKey,
			UserName:   r.UserName,
			Service:    r.Service,
			Date:       r.Date,
			Time:       r.Time,
			People:     r.People,
			Phone:      r.Phone,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		}
	}
	return res, nil
}

func (s *adminService) UpdateHandoffStatus(ctx context.Context, id uuid.UUID, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	handoff, err := uow.HandoffRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if handoff == nil {
		return fmt.Errorf("handoff request not found")
	}

	handoff.Status = status
	now := time.Now()
	handoff.UpdatedAt = &now
	return uow.HandoffRequestRepository().Update(ctx, handoff)
}

func (s *adminService) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservation, err := uow.ReservationRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if reservation == nil {
		return fmt.Errorf("reservation request not found")
	}

	reservation.Status = status
	now := time.Now()
	reservation.UpdatedAt = &now
	return uow.ReservationRequestRepository().Update(ctx, reservation)
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}
