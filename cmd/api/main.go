package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webshop-io/shop-api/internal/api"
	"github.com/webshop-io/shop-api/internal/core/service"
	"github.com/webshop-io/shop-api/internal/infrastructure/config"
	mongodb "github.com/webshop-io/shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/webshop-io/shop-api/internal/infrastructure/db/redis"
	"github.com/webshop-io/shop-api/internal/infrastructure/queue"
	"github.com/webshop-io/shop-api/pkg/logger"
)

const shutdownGracePeriod = 10 * time.Second

// @title           Webshop API
// @version         1.0
// @description     Authentication, catalog, cart and order API for the webshop backend.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongodb connection failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}

	// Order event pipeline: sharded workers keep per-order ordering, Redis
	// backs idempotency.
	counters := mongodb.NewCounters(db)
	orderRepo := mongodb.NewOrderRepository(db, counters)
	eventRepo := mongodb.NewOrderEventRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	eventService := service.NewOrderEventService(orderRepo, eventRepo, dedup, logg)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, logg)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(db, rdb, cfg.JWTSecret, dispatcher, logg)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- e.Start(":" + cfg.Port)
	}()
	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api server starting")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			logg.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-shutdown:
		logg.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGracePeriod)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("graceful server shutdown failed")
		}
		stopWorkers()

		if err := client.Disconnect(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("error closing mongodb connection")
		}
		if err := rdb.Close(); err != nil {
			logg.Error().Err(err).Msg("error closing redis connection")
		}
	}

	logg.Info().Msg("api server stopped")
}
