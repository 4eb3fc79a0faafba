package container

import (
	"fmt"

	"github.com/craftlink/craftlink-backend/internal/config"
	"github.com/craftlink/craftlink-backend/internal/delivery/http"
	"github.com/craftlink/craftlink-backend/internal/delivery/http/handler"
	"github.com/craftlink/craftlink-backend/internal/delivery/http/middleware"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/database"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/gemini"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/realtime"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/scheduler"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/server"
	"github.com/craftlink/craftlink-backend/internal/repository/postgres"
	"github.com/craftlink/craftlink-backend/internal/usecase/auth"
	"github.com/craftlink/craftlink-backend/internal/usecase/discovery"
	"github.com/craftlink/craftlink-backend/internal/usecase/match"
	"github.com/craftlink/craftlink-backend/internal/usecase/message"
	"github.com/craftlink/craftlink-backend/internal/usecase/notification"
	"github.com/craftlink/craftlink-backend/internal/usecase/profile"
	"github.com/craftlink/craftlink-backend/internal/usecase/project"
	"github.com/craftlink/craftlink-backend/internal/usecase/swipe"
	"github.com/craftlink/craftlink-backend/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	DB        *sqlx.DB
	Redis     *redis.Client
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Gemini    *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. The change feed degrades to a no-op without it.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("failed to initialize redis, realtime events disabled", zap.Error(err))
		redisClient = nil
	}

	// Initialize Gemini client. AI features are optional.
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		logger.Log.Warn("failed to initialize gemini client, AI features disabled", zap.Error(err))
		geminiClient = nil
	}

	// Initialize repositories
	creatorRepo := postgres.NewCreatorRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	convRepo := postgres.NewConversationRepository(db)
	notifRepo := postgres.NewNotificationRepository(db)
	blockRepo := postgres.NewBlockRepository(db)
	projectRepo := postgres.NewProjectRepository(db)

	// Initialize realtime publisher
	publisher := realtime.NewPublisher(redisClient, logger.Log)

	// Initialize use cases
	authUseCase := auth.NewUseCase(
		creatorRepo,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiryHrs,
	)

	profileUseCase := profile.NewUseCase(
		profileRepo,
		blockRepo,
		geminiClient,
	)

	matchUseCase := match.NewUseCase(
		matchRepo,
		swipeRepo,
		convRepo,
		notifRepo,
		profileRepo,
		publisher,
		geminiClient,
		logger.Log,
	)

	swipeUseCase := swipe.NewUseCase(
		swipeRepo,
		profileRepo,
		matchUseCase,
		logger.Log,
	)

	discoveryUseCase := discovery.NewUseCase(
		candidateRepo,
		swipeUseCase,
		cfg.Discovery.PoolBatchSize,
		cfg.Discovery.SwipeThresholdPx,
		logger.Log,
	)

	messageUseCase := message.NewUseCase(
		convRepo,
		notifRepo,
		publisher,
		logger.Log,
	)

	notificationUseCase := notification.NewUseCase(notifRepo)

	projectUseCase := project.NewUseCase(
		projectRepo,
		notifRepo,
		publisher,
		logger.Log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase, cfg.Discovery.SettleDelayMs)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	notificationHandler := handler.NewNotificationHandler(notificationUseCase)
	projectHandler := handler.NewProjectHandler(projectUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		discoveryHandler,
		swipeHandler,
		matchHandler,
		messageHandler,
		notificationHandler,
		projectHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	// Initialize maintenance scheduler
	sched := scheduler.New(
		sessionRepo,
		discoveryUseCase,
		cfg.Discovery.SessionIdleMinutes,
		logger.Log,
	)

	return &Container{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Server:    srv,
		Scheduler: sched,
		Gemini:    geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
