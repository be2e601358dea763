package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

const (
	// StreamName is the name of the audit stream.
	StreamName = "REFLECT"

	// SubjectPrefix is the prefix for all audit subjects.
	SubjectPrefix = "reflect"
)

// Auditor publishes one TurnEvent per reply the bot sends. Conversations
// are never deleted from the document store; this stream is the ordered
// history that backs that retention promise.
type Auditor struct {
	client *Client
}

// NewAuditor creates an auditor over an established client.
func NewAuditor(client *Client) *Auditor {
	return &Auditor{client: client}
}

// EnsureStream ensures the audit stream exists with proper configuration.
func (a *Auditor) EnsureStream(ctx context.Context) error {
	js := a.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil // Stream already exists
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      90 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Conversation turn audit trail",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// TurnSubject returns the subject for a turn event.
func TurnSubject(channel model.Channel, kind model.TurnKind) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, channel, kind)
}

// Publish publishes a turn event to the audit stream.
func (a *Auditor) Publish(ctx context.Context, ev *model.TurnEvent) (uint64, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal turn event: %w", err)
	}

	ack, err := a.client.JetStream().Publish(ctx, TurnSubject(ev.Channel, ev.Kind), data)
	if err != nil {
		return 0, fmt.Errorf("failed to publish turn event: %w", err)
	}

	return ack.Sequence, nil
}
