package queue

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/kafka-go"

	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/metrics"
)

// Consumer reads equip/unequip commands from Kafka and applies them through
// the equipment service. A message is committed only after processing
// finishes: success, a dropped business-rule violation, or dead-lettering.
type Consumer struct {
	reader     *kafka.Reader
	topic      string
	svc        equipment.Service
	deadLetter *DeadLetterWriter
	maxRetries int
}

// NewConsumer creates a new command consumer. maxRetries is the number of
// reprocess attempts after the first failure before the message is
// dead-lettered.
func NewConsumer(brokers []string, topic, groupID string, svc equipment.Service, deadLetter *DeadLetterWriter, maxRetries int) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Consumer{
		reader:     reader,
		topic:      topic,
		svc:        svc,
		deadLetter: deadLetter,
		maxRetries: maxRetries,
	}
}

// Run consumes until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("command consumer started", "topic", c.topic)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info("command consumer stopped")
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		msgCtx := logger.WithRequestID(ctx, logger.GenerateRequestID())
		c.handleMessage(msgCtx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			logger.FromContext(msgCtx).Error("failed to commit message",
				"offset", msg.Offset, "error", err)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) {
	log := logger.FromContext(ctx)

	cmd, err := equipment.DecodeCommand(msg.Value)
	if err != nil {
		// Malformed payloads are dropped, not retried.
		log.Warn("dropping malformed message", "offset", msg.Offset, "error", err)
		metrics.EquipCommandsTotal.WithLabelValues("malformed").Inc()
		return
	}

	attempts := 0
	for {
		attempts++
		err = c.svc.ApplyCommand(ctx, cmd)
		if err == nil {
			metrics.EquipCommandsTotal.WithLabelValues("processed").Inc()
			return
		}
		if attempts > c.maxRetries {
			break
		}
		log.Warn("command processing failed, retrying",
			"attempt", attempts, "action", cmd.Action, "item_id", cmd.ItemID, "error", err)
	}

	metrics.EquipCommandsTotal.WithLabelValues("dead_lettered").Inc()
	if c.deadLetter == nil {
		log.Error("command failed with no dead-letter sink configured",
			"attempts", attempts, "error", err)
		return
	}
	if dlErr := c.deadLetter.Write(c.topic, msg.Value, attempts, err); dlErr != nil {
		log.Error("failed to dead-letter message", "error", dlErr)
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
