package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberworks/gameledger/internal/balance"
	"github.com/emberworks/gameledger/internal/cache"
	"github.com/emberworks/gameledger/internal/character"
	"github.com/emberworks/gameledger/internal/config"
	"github.com/emberworks/gameledger/internal/database"
	"github.com/emberworks/gameledger/internal/database/postgres"
	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/event"
	"github.com/emberworks/gameledger/internal/handler"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/notify"
	"github.com/emberworks/gameledger/internal/queue"
	"github.com/emberworks/gameledger/internal/server"
	"github.com/emberworks/gameledger/internal/transfer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "gameledger",
		Version:     handler.Version,
	})
	handler.InitValidator()

	// Primary storage is required; fail fast if unreachable.
	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.ApplySchema(ctx, pool); err != nil {
		slog.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewLedgerRepository(pool)

	eventBus := event.NewMemoryBus()
	notify.NewNotifier(repo).Register(eventBus)

	historyCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, "gameledger")
	defer historyCache.Close()
	cachePolicy := cache.RetryPolicy{MaxAttempts: cfg.CacheRetries + 1, BaseDelay: cfg.CacheBaseWait}

	arbiter := equipment.NewArbiter()
	characterService := character.NewService(repo)
	equipmentService := equipment.NewService(repo, arbiter)
	transferService := transfer.NewService(repo)
	balanceService := balance.NewService(repo, eventBus, historyCache, cfg.CacheTTL, cachePolicy)

	publisher := queue.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	deadLetter, err := queue.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		slog.Error("Failed to open dead-letter file", "error", err)
		os.Exit(1)
	}
	defer deadLetter.Close()

	consumer := queue.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, equipmentService, deadLetter, cfg.ConsumerRetries)
	defer consumer.Close()

	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- consumer.Run(ctx)
	}()

	srv := server.NewServer(cfg.Port, pool, characterService, equipmentService, transferService, balanceService, publisher)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverDone:
		slog.Error("Server stopped unexpectedly", "error", err)
	case err := <-consumerDone:
		slog.Error("Consumer stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
