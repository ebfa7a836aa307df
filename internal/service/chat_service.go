package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"yatta-helin-be/internal/constant"
	"yatta-helin-be/internal/dto"
	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/pkg/logger"
	"yatta-helin-be/internal/repository/contract"
	"yatta-helin-be/internal/repository/specification"
	"yatta-helin-be/internal/repository/unitofwork"
	"yatta-helin-be/pkg/events"
	"yatta-helin-be/pkg/helin"
	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionKey string) ([]*dto.GetChatHistoryResponse, error)
	GetProducts(ctx context.Context) ([]*dto.ProductResponse, error)
	GetFaqs(ctx context.Context) ([]*dto.FaqResponse, error)
}

type chatService struct {
	engine      *helin.Engine
	sessionRepo contract.SessionContextRepository
	uowFactory  unitofwork.RepositoryFactory
	pubSub      *gochannel.GoChannel
	logger      logger.ILogger
}

func NewChatService(
	engine *helin.Engine,
	sessionRepo contract.SessionContextRepository,
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IChatService {
	return &chatService{
		engine:      engine,
		sessionRepo: sessionRepo,
		uowFactory:  uowFactory,
		pubSub:      pubSub,
		logger:      log,
	}
}

// SendChat runs one conversation turn. The engine itself cannot fail; only
// the session store can. Persistence and event fan-out are best effort so a
// database hiccup never silences the assistant.
func (s *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found, err := s.sessionRepo.Get(ctx, request.SessionKey)
	if err != nil {
		return nil, err
	}
	if !found {
		session = store.NewSessionContext()
	}

	// Client overrides fill gaps only; the conversation itself owns the state.
	if request.UserName != "" && session.UserName == "" {
		session.UserName = request.UserName
	}
	if request.SelectedService != "" && session.SelectedService == "" {
		session.SelectedService = request.SelectedService
	}

	var product *helin.ProductContext
	if request.ProductSlug != "" || request.ProductId != "" {
		product = &helin.ProductContext{Slug: request.ProductSlug, ID: request.ProductId}
	}

	result := s.engine.Process(helin.EngineRequest{
		Message: request.Message,
		Session: &session,
		Product: product,
	})

	updated := session
	if result.SessionPatch != nil {
		updated = result.SessionPatch.Apply(session)
	}
	if err := s.sessionRepo.Save(ctx, request.SessionKey, updated); err != nil {
		// losing the session context breaks every later turn
		return nil, err
	}

	s.persistTurn(ctx, request, result, updated)

	if result.FirstHandoff {
		s.publishEvent(constant.HandoffRequestedTopic,
			events.NewHandoffRequested(request.SessionKey, updated.UserName, request.Message))
	}
	if result.ReservationCompleted {
		s.publishEvent(constant.ReservationCompletedTopic,
			events.NewReservationCompleted(
				request.SessionKey, updated.UserName, updated.SelectedService,
				result.Draft.Date, result.Draft.Time, result.Draft.Phone, result.Draft.People,
			))
	}

	return &dto.SendChatResponse{
		SessionKey:   request.SessionKey,
		Reply:        result.Reply,
		Intent:       string(result.Intent),
		Mode:         updated.Mode,
		NeedsHuman:   result.NeedsHuman,
		MatchedFaqId: result.MatchedFaqID,
		SessionPatch: patchToMap(result.SessionPatch),
		Products:     s.repliedProducts(result, product),
	}, nil
}

// repliedProducts returns the product a product_info turn answered about,
// so the widget can render its card.
func (s *chatService) repliedProducts(result helin.EngineResult, pc *helin.ProductContext) []*dto.ProductResponse {
	if result.Intent != intent.ProductInfo || pc == nil {
		return nil
	}
	var p catalog.Product
	var ok bool
	if pc.Slug != "" {
		p, ok = s.engine.Catalog().ProductBySlug(strings.TrimSpace(pc.Slug))
	}
	if !ok && pc.ID != "" {
		p, ok = s.engine.Catalog().ProductByID(strings.TrimSpace(pc.ID))
	}
	if !ok {
		return nil
	}
	return []*dto.ProductResponse{{
		Id:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Currency:    p.Currency,
		Capacity:    p.Capacity,
		Description: p.Description,
	}}
}

// persistTurn writes the conversation log. Failures are logged and
// swallowed: the reply is already composed and the live session saved.
func (s *chatService) persistTurn(ctx context.Context, request *dto.SendChatRequest, result helin.EngineResult, updated store.SessionContext) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		s.logger.Error("ChatService", "Failed to begin persistence tx", map[string]interface{}{"error": err.Error()})
		return
	}
	defer uow.Rollback()

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: request.SessionKey})
	if err != nil {
		s.logger.Error("ChatService", "Failed to load chat session", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
		return
	}

	if chatSession == nil {
		chatSession = &entity.ChatSession{
			SessionKey:      request.SessionKey,
			UserName:        updated.UserName,
			SelectedService: updated.SelectedService,
			Mode:            updated.Mode,
			Context:         updated,
		}
		if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
			s.logger.Error("ChatService", "Failed to create chat session", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
			return
		}
	} else {
		chatSession.UserName = updated.UserName
		chatSession.SelectedService = updated.SelectedService
		chatSession.Mode = updated.Mode
		chatSession.Context = updated
		now := time.Now()
		chatSession.UpdatedAt = &now
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			s.logger.Error("ChatService", "Failed to update chat session", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
			return
		}
	}

	userMessage := &entity.ChatMessage{
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		s.logger.Error("ChatService", "Failed to persist user message", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
		return
	}

	assistantMessage := &entity.ChatMessage{
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       result.Reply,
		Intent:        string(result.Intent),
		MatchedFaqId:  result.MatchedFaqID,
		NeedsHuman:    result.NeedsHuman,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		s.logger.Error("ChatService", "Failed to persist assistant message", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
		return
	}

	if result.FirstHandoff {
		handoff := &entity.HandoffRequest{
			ChatSessionId:  chatSession.Id,
			SessionKey:     request.SessionKey,
			UserName:       updated.UserName,
			TriggerMessage: request.Message,
			Status:         constant.HandoffStatusOpen,
		}
		if err := uow.HandoffRequestRepository().Create(ctx, handoff); err != nil {
			s.logger.Error("ChatService", "Failed to persist handoff request", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
			return
		}
	}

	if result.ReservationCompleted {
		reservation := &entity.ReservationRequest{
			ChatSessionId: chatSession.Id,
			SessionKey:    request.SessionKey,
			UserName:      updated.UserName,
			Service:       updated.SelectedService,
			Date:          result.Draft.Date,
			Time:          result.Draft.Time,
			People:        result.Draft.People,
			Phone:         result.Draft.Phone,
			Status:        constant.ReservationStatusPending,
		}
		if err := uow.ReservationRequestRepository().Create(ctx, reservation); err != nil {
			s.logger.Error("ChatService", "Failed to persist reservation request", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
			return
		}
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("ChatService", "Failed to commit persistence tx", map[string]interface{}{"error": err.Error(), "session": request.SessionKey})
	}
}

func (s *chatService) publishEvent(topic string, event events.Event) {
	payload, err := json.Marshal(events.BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		s.logger.Error("ChatService", "Failed to marshal event", map[string]interface{}{"error": err.Error(), "topic": topic})
		return
	}
	if err := s.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Error("ChatService", "Failed to publish event", map[string]interface{}{"error": err.Error(), "topic": topic})
	}
}

func (s *chatService) GetChatHistory(ctx context.Context, sessionKey string) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return []*dto.GetChatHistoryResponse{}, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSession.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GetChatHistoryResponse, len(messages))
	for i, m := range messages {
		responses[i] = &dto.GetChatHistoryResponse{
			Id:         m.Id,
			Role:       m.Role,
			Content:    m.Content,
			Intent:     m.Intent,
			NeedsHuman: m.NeedsHuman,
			CreatedAt:  m.CreatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) GetProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	products := s.engine.Catalog().Products()
	responses := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = &dto.ProductResponse{
			Id:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Currency:    p.Currency,
			Capacity:    p.Capacity,
			Description: p.Description,
		}
	}
	return responses, nil
}

func (s *chatService) GetFaqs(ctx context.Context) ([]*dto.FaqResponse, error) {
	faqs := s.engine.Catalog().Faqs()
	responses := make([]*dto.FaqResponse, len(faqs))
	for i, f := range faqs {
		responses[i] = &dto.FaqResponse{
			Id:       f.ID,
			Category: f.Category,
			Question: f.Question,
			Answer:   f.Answer,
		}
	}
	return responses, nil
}

func patchToMap(patch *store.SessionPatch) map[string]interface{} {
	if patch == nil {
		return nil
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
