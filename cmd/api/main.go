package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/atlas-rto/workforce-matrix/internal/api/http"
	"github.com/atlas-rto/workforce-matrix/internal/api/http/handlers"
	"github.com/atlas-rto/workforce-matrix/internal/auth"
	"github.com/atlas-rto/workforce-matrix/internal/config"
	"github.com/atlas-rto/workforce-matrix/internal/events"
	"github.com/atlas-rto/workforce-matrix/internal/observability"
	"github.com/atlas-rto/workforce-matrix/internal/persistence"
	"github.com/atlas-rto/workforce-matrix/internal/repository"
	"github.com/atlas-rto/workforce-matrix/internal/service"
	"github.com/atlas-rto/workforce-matrix/internal/worker"
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

	var (
		backing persistence.KV
		pinger  handlers.Pinger
	)
	switch cfg.Store.Backend {
	case "postgres":
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Warn("postgres unavailable", zap.Error(err))
		} else if pg.Pool != nil {
			defer pg.Close()
			if err := pg.EnsureSchema(ctx, logger); err != nil {
				logger.Warn("schema setup failed", zap.Error(err))
			}
			backing = pg
			pinger = pg
		}
	case "redis":
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		backing = redis
		pinger = redis
	default:
		logger.Warn("unknown store backend, running in-memory only", zap.String("backend", cfg.Store.Backend))
	}

	adapter := persistence.NewAdapter(ctx, backing, logger)
	rosterRepo := repository.NewRosterRepository(adapter, cfg.Store.StorageKey)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartMutationWorker(dispatcher, logger, metrics)

	authService := service.NewAuthService(cfg.Auth, logger)
	rosterService := service.NewRosterService(rosterRepo, dispatcher, logger)
	if err := rosterService.Load(ctx); err != nil {
		logger.Fatal("failed to load roster", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), authService)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Store.Backend, pinger, adapter)
	authHandler := handlers.NewAuthHandler(authService)
	staffHandler := handlers.NewStaffHandler(rosterService, authService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Staff:          staffHandler,
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
