package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/logger"
)

// Publisher enqueues equip/unequip commands.
type Publisher interface {
	PublishCommand(ctx context.Context, cmd equipment.Command) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka-backed command publisher
func NewPublisher(brokers []string, topic string) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
	}
	return &kafkaPublisher{writer: writer}
}

// PublishCommand writes the command keyed by character so commands for one
// character stay ordered within a partition.
func (p *kafkaPublisher) PublishCommand(ctx context.Context, cmd equipment.Command) error {
	data, err := cmd.Encode()
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", cmd.CharacterID)),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish command: %w", err)
	}

	logger.FromContext(ctx).Info("command published",
		"action", cmd.Action,
		"character_id", cmd.CharacterID,
		"item_id", cmd.ItemID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
