package queue

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/emberworks/gameledger/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format
// Increment this when changing the DeadLetterEntry structure
const DeadLetterSchemaVersion = "1.0"

// DeadLetterFilePermissions is the file mode for the dead-letter log
const DeadLetterFilePermissions = 0o644

// DeadLetterWriter appends messages that exhausted their retries to a
// JSONL file.
type DeadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
}

// DeadLetterEntry records a message that failed processing after all retries
type DeadLetterEntry struct {
	SchemaVersion string          `json:"schema_version"` // Format version for future migrations
	Timestamp     time.Time       `json:"timestamp"`
	Topic         string          `json:"topic"`
	Payload       json.RawMessage `json:"payload"`
	Attempts      int             `json:"attempts"`
	LastError     string          `json:"last_error,omitempty"`
}

// NewDeadLetterWriter creates a new DeadLetterWriter
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends a failed message to the dead-letter file
func (dlw *DeadLetterWriter) Write(topic string, payload []byte, attempts int, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Topic:         topic,
		Payload:       json.RawMessage(payload),
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	log := logger.FromContext(context.Background())
	log.Warn("message_dead_lettered",
		"topic", topic,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		// Payload was not valid JSON; store it stringified instead.
		entry.Payload = nil
		entry.LastError = entry.LastError + " (payload not JSON: " + string(payload) + ")"
		data, err = json.Marshal(entry)
		if err != nil {
			return err
		}
	}
	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}
