package bootstrap

import (
	"context"
	"log"
	"time"

	"yatta-helin-be/internal/config"
	"yatta-helin-be/internal/controller"
	"yatta-helin-be/internal/handler"
	"yatta-helin-be/internal/pkg/logger"
	"yatta-helin-be/internal/pkg/mailer"
	"yatta-helin-be/internal/repository/contract"
	"yatta-helin-be/internal/repository/memory"
	"yatta-helin-be/internal/repository/redisstore"
	"yatta-helin-be/internal/repository/unitofwork"
	"yatta-helin-be/internal/service"
	"yatta-helin-be/internal/websocket"
	"yatta-helin-be/pkg/helin"
	"yatta-helin-be/pkg/helin/catalog"

	pktNats "yatta-helin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	NotifierService service.INotifierService

	// WebSockets
	OperatorHandler *handler.OperatorHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// Session context store. Redis keeps sessions across restarts and
	// instances, memory is the single-node default.
	sessionTTL := time.Duration(cfg.App.SessionTTLMinutes) * time.Minute
	var sessionRepo contract.SessionContextRepository
	if cfg.App.SessionStore == "redis" && rdb != nil {
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 3. Engine
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("[FATAL] Failed to load catalog: %v", err)
	}
	engineCfg := helin.DefaultConfig()
	if cfg.Helin.GreetingCap > 0 {
		engineCfg.Intent.GreetingCap = cfg.Helin.GreetingCap
	}
	if cfg.Helin.HandoffCap > 0 {
		engineCfg.Intent.HandoffCap = cfg.Helin.HandoffCap
	}
	if cfg.Helin.FaqThreshold > 0 {
		engineCfg.Intent.FaqThreshold = cfg.Helin.FaqThreshold
	}
	if cfg.Helin.ContactPhone != "" {
		engineCfg.Templates.ContactPhone = cfg.Helin.ContactPhone
	}
	if len(cfg.Helin.ResetKeywords) > 0 {
		engineCfg.Intent.ResetKeywords = cfg.Helin.ResetKeywords
	}
	engine := helin.New(cat, engineCfg)

	// 4. Services
	chatService := service.NewChatService(engine, sessionRepo, uowFactory, pubSub, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	notifierService := service.NewNotifierService(pubSub, emailService, cfg.SMTP.SalesEmail, wsHub, natsPub)

	// 5. Handlers & Controllers
	operatorHandler := handler.NewOperatorHandler(wsHub, sysLogger)

	return &Container{
		ChatController:  controller.NewChatController(chatService),
		AdminController: controller.NewAdminController(adminService),
		NotifierService: notifierService,
		OperatorHandler: operatorHandler,
		WebSocketHub:    wsHub,
	}
}
