package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"yatta-helin-be/internal/constant"
	"yatta-helin-be/internal/entity"
	"yatta-helin-be/internal/repository/specification"
	"yatta-helin-be/internal/repository/unitofwork"
	"yatta-helin-be/pkg/database"
	"yatta-helin-be/pkg/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Chat Session Repository", func(t *testing.T) {
		count, err := uow.ChatSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatSession count: %d", count)
	})

	t.Run("Check Handoff Request Repository", func(t *testing.T) {
		count, err := uow.HandoffRequestRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("HandoffRequest count: %d", count)
	})

	t.Run("Check Transactional Conversation Turn", func(t *testing.T) {
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionKey := "integration-" + uuid.New().String()
		session := &entity.ChatSession{
			SessionKey: sessionKey,
			UserName:   "Integration Test",
			Mode:       store.ModeInfo,
			Context:    store.NewSessionContext(),
		}
		err = uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, session.Id)

		userMsg := &entity.ChatMessage{
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleUser,
			Content:       "merhaba",
		}
		err = uow.ChatMessageRepository().Create(ctx, userMsg)
		assert.NoError(t, err)

		assistantMsg := &entity.ChatMessage{
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleAssistant,
			Content:       "Merhaba! Ben Helin.",
			Intent:        "greeting",
			MatchedFaqId:  "faq-greeting",
		}
		err = uow.ChatMessageRepository().Create(ctx, assistantMsg)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Read it back through the specification path
		found, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, store.ModeInfo, found.Mode)
		}

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.OrderBy{Field: "created_at"},
		)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)

		t.Log("Successfully persisted a conversation turn in a transaction")
	})
}
