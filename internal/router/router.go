package router

import (
	"swap-service/internal/config"
	"swap-service/internal/handler"
	"swap-service/internal/middleware"
	"swap-service/internal/repository"
	"swap-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize services
	roomService := service.NewRoomService(roomRepo, participantRepo, swapRepo, messageRepo, summaryRepo, logger)
	participantService := service.NewParticipantService(participantRepo, logger)
	swapService := service.NewSwapService(swapRepo, roomRepo, participantRepo, logger)
	sessionService := service.NewSessionService(roomRepo, participantRepo, swapRepo, redisClient, logger)
	messageService := service.NewMessageService(messageRepo, roomRepo, logger)

	// Initialize handlers
	roomHandler := handler.NewRoomHandler(roomService, participantService, sessionService, logger)
	participantHandler := handler.NewParticipantHandler(participantService, logger)
	swapHandler := handler.NewSwapHandler(swapService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health endpoints
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", middleware.MetricsHandler())

	// API routes with base path
	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Room routes
		api.POST("/rooms", roomHandler.CreateRoom)
		api.POST("/rooms/join", roomHandler.JoinRoom)
		api.GET("/rooms/:roomId", roomHandler.GetRoom)
		api.POST("/rooms/:roomId/end", roomHandler.EndRoom)
		api.GET("/rooms/:roomId/summary", roomHandler.GetSummary)

		// Participant routes
		api.POST("/participants/:participantId/leave", participantHandler.Leave)
		api.PUT("/participants/:participantId/ready", participantHandler.SetReady)
		api.PUT("/participants/:participantId/platform", participantHandler.SetPlatform)

		// Swap routes
		api.POST("/rooms/:roomId/swaps", swapHandler.RecordSwap)
		api.GET("/rooms/:roomId/swaps", swapHandler.History)
		api.POST("/rooms/:roomId/swaps/pick", swapHandler.PickTarget)

		// Message routes
		api.POST("/rooms/:roomId/messages", messageHandler.Send)
		api.GET("/rooms/:roomId/messages", messageHandler.List)
	}

	return r
}
