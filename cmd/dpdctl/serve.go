package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/99minutos/dpd-compiler/internal/api"
	"github.com/99minutos/dpd-compiler/internal/api/handler"
	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/db/mongo"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/db/redis"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/queue"
	"github.com/99minutos/dpd-compiler/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required to serve the API")
	}

	rc, err := newRequestContext(cfg)
	if err != nil {
		return err
	}

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	eventRepo := mongo.NewEventRepository(db)
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create event indexes")
	}

	operators := mongo.NewOperatorRepository(db)
	if err := operators.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create operator indexes")
	}

	inv := newInvoker(cfg, log)
	compiler := service.NewCompiler(rc, inv, mongo.NewJournalRepository(db), logger.Component("compiler"))
	events := service.NewEventService(rc, inv, redis.NewDedupChecker(rdb), logger.Component("events"))
	auth := service.NewAuthService(operators, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))

	dispatcher := queue.NewDispatcher(cfg.Events.Workers, eventRepo, logger.Component("dispatcher"))
	dispatcher.Start(ctx)
	if cfg.Events.Enabled {
		pump := queue.NewPump(events, dispatcher, cfg.Events.Interval, logger.Component("pump"))
		go pump.Run(ctx)
	}

	e := api.NewRouter(api.Deps{
		Compiler:   compiler,
		Auth:       auth,
		Settings:   rc,
		Events:     events,
		Dispatcher: dispatcher,
		Checks: map[string]handler.Check{
			"mongodb": mongo.HealthCheck(mongoClient),
			"redis":   redis.HealthCheck(rdb),
		},
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", string(rc.Environment())).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
