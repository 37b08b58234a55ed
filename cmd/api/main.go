package main

// @title Places Directory Service API
// @version 1.0.0
// @description Location-backed directory of geocoded places owned by companies or individuals.
// @description Answers radius-bounded, nearest-first proximity queries over the stored places.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8001
// @BasePath /
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-directory/docs/swagger"
	"github.com/places-directory/internal/config"
	httpDelivery "github.com/places-directory/internal/delivery/http"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/pkg/logger"
	"github.com/places-directory/internal/repository/cache"
	"github.com/places-directory/internal/repository/postgres"
	redisRepo "github.com/places-directory/internal/repository/redis"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Directory Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	placeRepo := postgres.NewPlaceRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	individualRepo := postgres.NewIndividualRepository(db)
	apiKeyRepo := postgres.NewAPIKeyRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	authUC := usecase.NewAuthUseCase(apiKeyRepo, log)
	nearbyUC := usecase.NewNearbyUseCase(placeRepo, cacheRepo, log, cfg.Cache.NearbyCacheTTL)
	companyUC := usecase.NewCompanyUseCase(companyRepo, cacheRepo, streamRepo, log)
	individualUC := usecase.NewIndividualUseCase(individualRepo, cacheRepo, streamRepo, log)
	adminUC := usecase.NewAdminUseCase(placeRepo, cacheRepo, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	companyHandler := handler.NewCompanyHandler(companyUC, log)
	individualHandler := handler.NewIndividualHandler(individualUC, log)
	placeHandler := handler.NewPlaceHandler(nearbyUC, log)
	adminHandler := handler.NewAdminHandler(adminUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		companyHandler,
		individualHandler,
		placeHandler,
		adminHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
