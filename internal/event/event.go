package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	BalanceToppedUp Type = "balance.topped_up"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceToppedUpPayloadV1 is the typed payload for top-up events
type BalanceToppedUpPayloadV1 struct {
	CharacterID    int64  `json:"character_id"`
	CurrencyTypeID int64  `json:"currency_type_id"`
	Amount         string `json:"amount"`
	NewBalance     string `json:"new_balance"`
	Timestamp      int64  `json:"timestamp"`
}

// NewBalanceToppedUpEvent creates a new top-up event with type-safe payload
func NewBalanceToppedUpEvent(characterID, currencyTypeID int64, amount, newBalance string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceToppedUp,
		Payload: BalanceToppedUpPayloadV1{
			CharacterID:    characterID,
			CurrencyTypeID: currencyTypeID,
			Amount:         amount,
			NewBalance:     newBalance,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
