// @title           Swap Service API
// @version         1.0
// @description     Room and swap coordination service for screen-swap sessions
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8005
// @BasePath  /api/swap

package main

import (
	"fmt"
	"log"
	"os"

	"swap-service/internal/config"
	"swap-service/internal/database"
	"swap-service/internal/router"

	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Swap Service",
		zap.Int("port", cfg.Server.Port),
		zap.String("basePath", cfg.Server.BasePath),
		zap.String("env", cfg.Server.Env))

	db, err := database.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("PostgreSQL connected")

	redisClient := database.NewRedis(cfg)
	if redisClient != nil {
		logger.Info("Redis connected")
	} else {
		logger.Warn("Redis unavailable, session snapshots will not be cached")
	}

	r := router.Setup(cfg, db, redisClient, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Swap Service started", zap.String("address", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Env == "production" {
		zapCfg := zap.NewProductionConfig()
		if level, err := zap.ParseAtomicLevel(cfg.Server.LogLevel); err == nil {
			zapCfg.Level = level
		}
		return zapCfg.Build()
	}
	return zap.NewDevelopment()
}
