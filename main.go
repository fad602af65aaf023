package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"practico/internal/config"
	"practico/internal/services"
	"practico/internal/storage"
	"practico/pkg/logger"
	"practico/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		boot := logger.NewWithWriter(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	// --- Initialize Store ---
	store, err := storage.Open(context.Background(), cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	if cfg.Events.Enabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.Events.RabbitMQURL,
			Exchange: cfg.Events.Exchange,
			Queue:    cfg.Events.Queue,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		// --- Start RabbitMQ Consumer ---
		if err := mqClient.ConsumeEvents(rabbitmq.LogEvents(log)); err != nil {
			log.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
	}

	app := newApp(cfg, store.Repositories, store.Driver, publisher, log)

	// --- Start HTTP Server ---
	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("error closing store")
	}

	log.Info().Msg("server gracefully stopped")
}
