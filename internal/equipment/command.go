package equipment

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/emberworks/gameledger/internal/domain"
)

// CommandAction is the closed set of queue command actions.
type CommandAction string

const (
	ActionEquip   CommandAction = "equip"
	ActionUnequip CommandAction = "unequip"
)

// Command is an equip or unequip request delivered over the queue. Payloads
// are parsed and validated once at the boundary; consumers switch on Action
// exhaustively.
type Command struct {
	Action      CommandAction `json:"action"`
	CharacterID int64         `json:"character_id"`
	ItemID      int64         `json:"item_id"`
}

// DecodeCommand parses a queue message body into a Command. Unknown fields,
// missing IDs and unrecognized actions are all decode errors; the consumer
// drops such messages without retry.
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		return Command{}, fmt.Errorf("%w: malformed command payload: %v", domain.ErrInvalidInput, err)
	}

	switch cmd.Action {
	case ActionEquip, ActionUnequip:
	default:
		return Command{}, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, cmd.Action)
	}
	if cmd.CharacterID <= 0 {
		return Command{}, fmt.Errorf("%w: character_id must be positive", domain.ErrInvalidInput)
	}
	if cmd.ItemID <= 0 {
		return Command{}, fmt.Errorf("%w: item_id must be positive", domain.ErrInvalidInput)
	}
	return cmd, nil
}

// Encode serializes the command for publishing.
func (c Command) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}
	return data, nil
}
