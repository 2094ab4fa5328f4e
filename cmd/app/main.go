package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ton-mini-app-backend/internal/common/config"
	"ton-mini-app-backend/internal/common/logger"
	apphttp "ton-mini-app-backend/internal/http"
	"ton-mini-app-backend/internal/platform/postgres"
	redisp "ton-mini-app-backend/internal/platform/redis"
)

// @title           TON Mini App API
// @version         1.0
// @description     Backend for the TON Mystery Cases Telegram Mini App.
// @BasePath        /

// @tag.name users
// @tag.description Registration and wallet linking

// @tag.name transactions
// @tag.description Transaction status

// @tag.name app
// @tag.description Manifest and static pages

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("ton-mini-app-backend", false)
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init("ton-mini-app-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pg, err := postgres.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pg.Close()

	var rdb *redisp.Client
	if cfg.CacheEnabled() {
		rdb, err = redisp.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	} else {
		logger.Info().Msg("REDIS_ADDR is empty, user cache disabled")
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      apphttp.NewApp(cfg, pg, rdb),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("manifest", cfg.App.URL+"/tonconnect-manifest.json").
			Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
