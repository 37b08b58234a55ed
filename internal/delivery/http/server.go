package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/places-directory/internal/config"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/usecase"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server fronting the directory.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	// Handlers
	companyHandler    *handler.CompanyHandler
	individualHandler *handler.IndividualHandler
	placeHandler      *handler.PlaceHandler
	adminHandler      *handler.AdminHandler
	statsHandler      *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	companyHandler *handler.CompanyHandler,
	individualHandler *handler.IndividualHandler,
	placeHandler *handler.PlaceHandler,
	adminHandler *handler.AdminHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Places Directory Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		authUC:            authUC,
		companyHandler:    companyHandler,
		individualHandler: individualHandler,
		placeHandler:      placeHandler,
		adminHandler:      adminHandler,
		statsHandler:      statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check is the only unauthenticated endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Every directory operation sits behind the API key gate
	api.Use(middleware.APIKeyAuth(s.authUC, s.logger))

	// Company routes
	api.Post("/companies", s.companyHandler.Create)
	api.Put("/companies/:id", s.companyHandler.Update)
	api.Delete("/companies/:id", s.companyHandler.Delete)

	// Individual routes
	api.Post("/individuals", s.individualHandler.Create)
	api.Put("/individuals/:id", s.individualHandler.Update)
	api.Delete("/individuals/:id", s.individualHandler.Delete)

	// Proximity query
	api.Get("/places/nearby", s.placeHandler.Nearby)

	// Stats
	api.Get("/stats", s.statsHandler.GetStats)

	// Admin
	api.Delete("/admin/clear-all-data", s.adminHandler.ClearAllData)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
