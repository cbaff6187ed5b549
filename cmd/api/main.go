package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookinghub/booking-api/internal/api"
	"github.com/bookinghub/booking-api/internal/infrastructure/config"
	"github.com/bookinghub/booking-api/internal/infrastructure/db/mongo"
	"github.com/bookinghub/booking-api/internal/infrastructure/db/redis"
	"github.com/bookinghub/booking-api/internal/pkg/token"
	"github.com/bookinghub/booking-api/pkg/logger"
)

func main() {
	loadLocalEnv()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// A missing JWT_SECRET lands here: refuse to start rather than
		// fall back to a known signing key.
		log.Fatalf("load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	credentials, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logg.Fatal().Err(err).Msg("init credential service")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("ensure indexes")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, credentials, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("booking api listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown error")
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
