package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitlink/fitlink/internal/pkg/config"
	"github.com/fitlink/fitlink/internal/pkg/database"
	"github.com/fitlink/fitlink/internal/pkg/health"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/middleware"
	natspkg "github.com/fitlink/fitlink/internal/pkg/nats"
	nrpkg "github.com/fitlink/fitlink/internal/pkg/newrelic"
	"github.com/fitlink/fitlink/services/onboarding/gateway"
	"github.com/fitlink/fitlink/services/onboarding/handler"
	httpHandler "github.com/fitlink/fitlink/services/onboarding/handler/http"
	"github.com/fitlink/fitlink/services/onboarding/repository"
	"github.com/fitlink/fitlink/services/onboarding/usecase"
)

func main() {
	appName := "onboarding-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/onboarding.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic before the logger so log forwarding can attach
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	labels := config.DefaultLabelConfig()
	if path := configs.Onboarding.LabelConfigPath; path != "" {
		labels, err = config.LoadLabelConfig(path)
		if err != nil {
			logger.Fatal("Failed to load label config",
				logger.String("path", path),
				logger.Err(err))
		}
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	onboardingRepo := repository.NewOnboardingRepo(configs, postgresClient.GetDB(), redisClient)
	onboardingGW := gateway.NewOnboardingGW(configs, natsClient)
	onboardingUC := usecase.NewOnboardingUC(configs, labels, onboardingRepo, onboardingGW)

	webhookHandler := httpHandler.NewWebhookHandler(onboardingUC, configs, httpHandler.PassthroughDecryptor{})
	onboardingHandler := httpHandler.NewOnboardingHandler(onboardingUC)
	h := handler.NewHandler(webhookHandler, onboardingHandler, configs)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.CheckerFunc{CheckerName: "postgres", Fn: func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		}},
		health.CheckerFunc{CheckerName: "redis", Fn: func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		}},
		health.CheckerFunc{CheckerName: "nats", Fn: func(ctx context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return fmt.Errorf("nats connection lost")
			}
			return nil
		}},
	)

	h.RegisterRoutes(e)

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		logger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err))
	}
}
