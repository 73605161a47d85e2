package bootstrap

import (
	"context"
	"log"

	"feedback-forum-be/internal/config"
	"feedback-forum-be/internal/controller"
	"feedback-forum-be/internal/handler"
	"feedback-forum-be/internal/pkg/logger"
	"feedback-forum-be/internal/pkg/mailer"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/internal/service"
	"feedback-forum-be/internal/websocket"

	pktNats "feedback-forum-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FeedbackController controller.IFeedbackController
	TagController      controller.ITagController
	CommentController  controller.ICommentController
	FeatureController  controller.IFeatureController
	AdminController    controller.IAdminController

	// Background services (exposed for main.go to run)
	NotificationService service.INotificationService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the object graph. db carries the request-scoped
// connection; adminDb carries the privileged role that bypasses row-level
// security and serves only the moderation surface.
func NewContainer(db, adminDb *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	adminUowFactory := unitofwork.NewRepositoryFactory(adminDb)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" && cfg.SMTP.ModeratorEmail != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.ModeratorEmail,
		)
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)

	feedbackService := service.NewFeedbackService(uowFactory, publisherService)
	feedbackTagService := service.NewFeedbackTagService(uowFactory)
	tagService := service.NewTagService(uowFactory)
	commentService := service.NewCommentService(uowFactory, publisherService)
	reactionService := service.NewReactionService(uowFactory)
	featureService := service.NewFeatureService(uowFactory)
	adminService := service.NewAdminService(adminUowFactory)

	var moderationMailer service.ModerationMailer
	if emailService != nil {
		moderationMailer = emailService
	}
	notifService := service.NewNotificationService(uowFactory, pubSub, wsHub, moderationMailer, wsLogger)

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		FeedbackController: controller.NewFeedbackController(feedbackService, feedbackTagService, reactionService),
		TagController:      controller.NewTagController(tagService),
		CommentController:  controller.NewCommentController(commentService),
		FeatureController:  controller.NewFeatureController(featureService),
		AdminController:    controller.NewAdminController(adminService),

		NotificationService: notifService,
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
