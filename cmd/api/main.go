// @title                       Parcel Tracking API
// @version                     1.0
// @description                 Tracks La Poste parcels, infers their delivery phase and watches them for updates.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/99minutos/tracking-system/docs"
	"github.com/99minutos/tracking-system/internal/api"
	"github.com/99minutos/tracking-system/internal/api/handler"
	"github.com/99minutos/tracking-system/internal/core/service"
	"github.com/99minutos/tracking-system/internal/infrastructure/carrier/laposte"
	"github.com/99minutos/tracking-system/internal/infrastructure/config"
	mongodb "github.com/99minutos/tracking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/tracking-system/internal/infrastructure/db/redis"
	"github.com/99minutos/tracking-system/internal/infrastructure/queue"
	"github.com/99minutos/tracking-system/internal/infrastructure/scheduler"
	"github.com/99minutos/tracking-system/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "tracking-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("tracking api stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	authRepo := mongodb.NewAuthRepository(db)
	watchRepo := mongodb.NewWatchRepository(db)
	snapshotRepo := mongodb.NewSnapshotRepository(db)
	eventLogRepo := mongodb.NewEventLogRepository(db)
	if err := mongodb.EnsureIndexes(ctx, authRepo, watchRepo, snapshotRepo, eventLogRepo); err != nil {
		return err
	}

	// --- Core services ---
	carrier := laposte.NewClient(laposte.Config{
		BaseURL:  cfg.LaPoste.BaseURL,
		OkapiKey: cfg.LaPoste.OkapiKey,
		Timeout:  cfg.LaPoste.Timeout,
	}, logger.Component("laposte"))

	trackingService := service.NewTrackingService(
		carrier,
		snapshotRepo,
		eventLogRepo,
		redisdb.NewEventCursor(rdb),
		service.TrackingConfig{
			StrictCodes:      cfg.Tracking.StrictCodes,
			BatchConcurrency: cfg.Tracking.BatchConcurrency,
		},
		logger.Component("tracking"),
	)
	watchService := service.NewWatchService(watchRepo, snapshotRepo, trackingService, logger.Component("watches"))
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, tokenTTL)

	// --- Background refresh ---
	dispatcher := queue.NewDispatcher(cfg.Refresh.Workers, watchService, logger.Component("refresh-worker"))
	dispatcher.Start(ctx)

	job := scheduler.NewRefreshJob(watchService, dispatcher, cfg.Refresh.Schedule, log)
	if err := job.Start(ctx); err != nil {
		return err
	}
	defer job.Stop()

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Tracking:     trackingService,
		Watches:      watchService,
		Auth:         authService,
		RefreshQueue: dispatcher,
		Probes: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("tracking api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
