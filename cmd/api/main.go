package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/samadhan-setu/grievance-service/internal/annotator"
	httptransport "github.com/samadhan-setu/grievance-service/internal/api/http"
	"github.com/samadhan-setu/grievance-service/internal/api/http/handlers"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/config"
	"github.com/samadhan-setu/grievance-service/internal/events"
	"github.com/samadhan-setu/grievance-service/internal/observability"
	"github.com/samadhan-setu/grievance-service/internal/persistence"
	"github.com/samadhan-setu/grievance-service/internal/repository"
	"github.com/samadhan-setu/grievance-service/internal/service"
	"github.com/samadhan-setu/grievance-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	complaintService := service.NewComplaintService(complaintRepo, dispatcher)
	officialService := service.NewOfficialService(userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger)
	notificationService.RegisterHandlers()

	annotatorClient := annotator.NewClient(cfg.Annotator)
	classifier := worker.NewClassificationWorker(annotatorClient, complaintRepo, dispatcher, logger)
	classifier.Start()

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(officialService, authService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
