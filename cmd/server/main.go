package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talenthub/recruiting-api/internal/api"
	"github.com/talenthub/recruiting-api/internal/infrastructure/config"
	mongodb "github.com/talenthub/recruiting-api/internal/infrastructure/db/mongo"
	redisdb "github.com/talenthub/recruiting-api/internal/infrastructure/db/redis"
	"github.com/talenthub/recruiting-api/internal/infrastructure/queue"
	"github.com/talenthub/recruiting-api/pkg/logger"
)

// main wires configuration, storage, the audit dispatcher and the HTTP router,
// then runs the server until a shutdown signal arrives. Business logic lives
// in internal/core.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(mongoClient, db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	skillRepo := mongodb.NewSkillRepository(db)
	if err := skillRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create skill indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	auditRepo := mongodb.NewAuditRepository(db)
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, log)
	audit.Start(ctx)

	e := api.NewRouter(api.Deps{
		MongoClient: mongoClient,
		DB:          db,
		Redis:       rdb,
		Audit:       audit,
		Config:      cfg,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
