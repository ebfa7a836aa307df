package mapper

import (
	"encoding/json"
	"time"

	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/model"
	"yatta-helin-be/pkg/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	context := store.NewSessionContext()
	if len(s.Context) > 0 {
		// a snapshot that fails to decode falls back to a fresh context
		// rather than poisoning the whole row
		_ = json.Unmarshal(s.Context, &context)
	}

	return &entity.ChatSession{
		Id:              s.Id,
		SessionKey:      s.SessionKey,
		UserName:        s.UserName,
		SelectedService: s.SelectedService,
		Mode:            s.Mode,
		Context:         context,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       s.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	snapshot, _ := json.Marshal(s.Context)

	return &model.ChatSession{
		Id:              s.Id,
		SessionKey:      s.SessionKey,
		UserName:        s.UserName,
		SelectedService: s.SelectedService,
		Mode:            s.Mode,
		Context:         datatypes.JSON(snapshot),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var deletedAt *time.Time
	if msg.DeletedAt.Valid {
		t := msg.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		Intent:        msg.Intent,
		MatchedFaqId:  msg.MatchedFaqId,
		NeedsHuman:    msg.NeedsHuman,
		CreatedAt:     msg.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     msg.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if msg.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *msg.DeletedAt, Valid: true}
	} else if msg.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		Intent:        msg.Intent,
		MatchedFaqId:  msg.MatchedFaqId,
		NeedsHuman:    msg.NeedsHuman,
		CreatedAt:     msg.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

// Handoff Mappers

func (m *ChatMapper) HandoffRequestToEntity(h *model.HandoffRequest) *entity.HandoffRequest {
	if h == nil {
		return nil
	}

	var deletedAt *time.Time
	if h.DeletedAt.Valid {
		t := h.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !h.UpdatedAt.IsZero() {
		t := h.UpdatedAt
		updatedAt = &t
	}

	return &entity.HandoffRequest{
		Id:             h.Id,
		ChatSessionId:  h.ChatSessionId,
		SessionKey:     h.SessionKey,
		UserName:       h.UserName,
		TriggerMessage: h.TriggerMessage,
		Status:         h.Status,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      h.DeletedAt.Valid,
	}
}

func (m *ChatMapper) HandoffRequestToModel(h *entity.HandoffRequest) *model.HandoffRequest {
	if h == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if h.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *h.DeletedAt, Valid: true}
	} else if h.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if h.UpdatedAt != nil {
		updatedAt = *h.UpdatedAt
	}

	return &model.HandoffRequest{
		Id:             h.Id,
		ChatSessionId:  h.ChatSessionId,
		SessionKey:     h.SessionKey,
		UserName:       h.UserName,
		TriggerMessage: h.TriggerMessage,
		Status:         h.Status,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

// Reservation Mappers

func (m *ChatMapper) ReservationRequestToEntity(r *model.ReservationRequest) *entity.ReservationRequest {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.ReservationRequest{
		Id:            r.Id,
		ChatSessionId: r.ChatSessionId,
		SessionKey:    r.SessionKey,
		UserName:      r.UserName,
		Service:       r.Service,
		Date:          r.Date,
		Time:          r.Time,
		People:        r.People,
		Phone:         r.Phone,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     r.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ReservationRequestToModel(r *entity.ReservationRequest) *model.ReservationRequest {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.ReservationRequest{
		Id:            r.Id,
		ChatSessionId: r.ChatSessionId,
		SessionKey:    r.SessionKey,
		UserName:      r.UserName,
		Service:       r.Service,
		Date:          r.Date,
		Time:          r.Time,
		People:        r.People,
		Phone:         r.Phone,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}
