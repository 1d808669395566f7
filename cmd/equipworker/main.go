package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberworks/gameledger/internal/config"
	"github.com/emberworks/gameledger/internal/database"
	"github.com/emberworks/gameledger/internal/database/postgres"
	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/queue"
)

// equipworker runs the equip/unequip command consumer on its own, for
// deployments that separate API and worker processes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "gameledger-equipworker",
	})

	pool, err := database.NewPool(cfg.GetDBConnString(), 5, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewLedgerRepository(pool)
	equipmentService := equipment.NewService(repo, equipment.NewArbiter())

	deadLetter, err := queue.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		slog.Error("Failed to open dead-letter file", "error", err)
		os.Exit(1)
	}
	defer deadLetter.Close()

	consumer := queue.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, equipmentService, deadLetter, cfg.ConsumerRetries)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		slog.Error("Consumer stopped with error", "error", err)
		os.Exit(1)
	}
}
