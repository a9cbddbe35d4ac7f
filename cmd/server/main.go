package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/raspberrycoffee/onboarding-backend/api/handler"
	"github.com/raspberrycoffee/onboarding-backend/internal/config"
	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/completion"
	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/journal"
	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/monitor"
	pgInfra "github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/postgres"
	redisInfra "github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/redis"
	"github.com/raspberrycoffee/onboarding-backend/internal/middleware"
	"github.com/raspberrycoffee/onboarding-backend/internal/router"
	"github.com/raspberrycoffee/onboarding-backend/internal/services"
	"github.com/raspberrycoffee/onboarding-backend/internal/services/lifecycle"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
	"github.com/raspberrycoffee/onboarding-backend/pkg/logger"
	"github.com/raspberrycoffee/onboarding-backend/repository/postgres"
	redisRepo "github.com/raspberrycoffee/onboarding-backend/repository/redis"
	authUC "github.com/raspberrycoffee/onboarding-backend/usecase/auth"
	chatUC "github.com/raspberrycoffee/onboarding-backend/usecase/chat"
	portalUC "github.com/raspberrycoffee/onboarding-backend/usecase/portal"
	registryUC "github.com/raspberrycoffee/onboarding-backend/usecase/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journalStore, err := journal.Open(cfg.Journal.Path, "journal")
	if err != nil {
		zapLogger.Fatal("failed to open activity journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})

	mon := monitor.New(pool, redisClient, journalStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	sweeper := services.NewJournalSweeper(journalStore, zapLogger, services.SweeperConfig{
		Interval:  cfg.Journal.SweepInterval,
		Retention: cfg.Journal.Retention,
	})
	sweeper.Start()
	manager.Register("journal_sweeper", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	employeeRepo := postgres.NewEmployeeRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Auth.SessionTTL)
	recorder := services.NewJournalRecorder(journalStore)
	completionClient := completion.NewClient(completion.Config{
		BaseURL:   cfg.Completion.BaseURL,
		APIKey:    cfg.Completion.APIKey,
		Model:     cfg.Completion.Model,
		MaxTokens: cfg.Completion.MaxTokens,
		Timeout:   cfg.Completion.Timeout,
	}, zapLogger)

	portalStates := portalUC.NewStateStore()
	registryUseCase := registryUC.New(employeeRepo, recorder, zapLogger)
	portalUseCase := portalUC.New(employeeRepo, portalStates, zapLogger)
	authUseCase := authUC.New(employeeRepo, sessionRepo, portalStates, authUC.Config{
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		SessionTTL:   cfg.Auth.SessionTTL,
		DemoEmail:    cfg.Auth.DemoEmail,
		DemoPassword: cfg.Auth.DemoPassword,
	}, zapLogger)
	chatUseCase := chatUC.New(completionClient, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Employee: apiHandler.NewEmployeeHandler(registryUseCase, ctxAdapter, zapLogger),
		Portal:   apiHandler.NewPortalHandler(portalUseCase, ctxAdapter, zapLogger),
		Chat:     apiHandler.NewChatHandler(chatUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(journalStore, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	sessionAuth := middleware.SessionAuth(cfg.JWT.Secret, authUseCase, zapLogger)
	r := router.New(handlers, sessionAuth)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
