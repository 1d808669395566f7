package notify

import (
	"context"
	"fmt"

	"github.com/emberworks/gameledger/internal/event"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/repository"
)

// Notifier emails a character's owning user when their balance changes.
// Delivery is fire-and-forget: the publisher never rolls back on a
// notification failure.
type Notifier struct {
	repo repository.Ledger
}

// NewNotifier creates a notifier backed by the ledger store
func NewNotifier(repo repository.Ledger) *Notifier {
	return &Notifier{repo: repo}
}

// Register subscribes the notifier to the event bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.BalanceToppedUp, n.handleTopUp)
}

func (n *Notifier) handleTopUp(ctx context.Context, e event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := e.Payload.(event.BalanceToppedUpPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload type for %s", e.Type)
	}

	owner, err := n.repo.GetCharacterOwner(ctx, payload.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to resolve character owner: %w", err)
	}

	n.sendEmail(ctx, owner.Email, payload)
	log.Info("top-up notification sent",
		"character_id", payload.CharacterID,
		"email", owner.Email)
	return nil
}

// sendEmail is the delivery stub. There is no SMTP relay in this deployment;
// the message is logged instead.
func (n *Notifier) sendEmail(ctx context.Context, email string, payload event.BalanceToppedUpPayloadV1) {
	logger.FromContext(ctx).Info("email queued",
		"to", email,
		"subject", "Balance topped up",
		"amount", payload.Amount,
		"new_balance", payload.NewBalance)
}
