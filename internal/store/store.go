// Package store persists conversation records and the processing-status
// watermarks.
package store

import (
	"context"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

// ConversationStore is document-per-conversation persistence keyed by
// image. Records are never deleted; retirement flips the Active flag and
// keeps the document for audit.
type ConversationStore interface {
	// Insert stores a new conversation record.
	Insert(ctx context.Context, conv *model.Conversation) error

	// FindByLastReply returns every conversation whose last outbound
	// reply id matches. The dispatcher requires exactly one match.
	FindByLastReply(ctx context.Context, replyID int64) ([]model.Conversation, error)

	// FindActiveBySender returns the active direct-message conversations
	// for a sender.
	FindActiveBySender(ctx context.Context, senderID string) ([]model.Conversation, error)

	// Save writes the whole record back, keyed by image.
	Save(ctx context.Context, conv *model.Conversation) error

	// RetireBySender marks every direct-message conversation for the
	// sender inactive, retaining the records.
	RetireBySender(ctx context.Context, senderID string) error
}

// StatusStore holds the singleton processing-status record.
type StatusStore interface {
	Watermarks(ctx context.Context) (model.Watermarks, error)
	SetLastMention(ctx context.Context, id int64) error
	SetLastDirectMessage(ctx context.Context, id int64) error
}

// Pinger reports backend reachability for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
