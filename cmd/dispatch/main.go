package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fleetline/dispatch/internal/pkg/config"
	"github.com/fleetline/dispatch/internal/pkg/health"
	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/middleware"
	"github.com/fleetline/dispatch/internal/pkg/server"
	"github.com/fleetline/dispatch/internal/pkg/validator"
	"github.com/fleetline/dispatch/services/dispatch/handler"
	"github.com/fleetline/dispatch/services/dispatch/repository"
	"github.com/fleetline/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize the in-memory domain store with demo seed data
	dispatchRepo := repository.NewDispatchRepo()

	users, drivers, jobs, activity := dispatchRepo.Stats()
	zapLogger.Info("Demo data loaded",
		zap.Int("users", users),
		zap.Int("drivers", drivers),
		zap.Int("jobs", jobs),
		zap.Int("activity_entries", activity),
	)

	// Initialize UseCase
	dispatchUC := usecase.NewDispatchUC(dispatchRepo, configs)

	// Initialize handlers
	Handler := handler.NewHandler(dispatchUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{configs.Server.ClientURL},
		AllowCredentials: true,
	}))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
