package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldline/crm-api/internal/api"
	"github.com/fieldline/crm-api/internal/infrastructure/config"
	"github.com/fieldline/crm-api/internal/infrastructure/db/postgres"
	"github.com/fieldline/crm-api/pkg/logger"
	"github.com/fieldline/crm-api/pkg/token"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	tokens := token.New(cfg.JWTSecret, cfg.JWTTTL)

	e := api.NewRouter(db, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server shut down")
}
