// Package gateway abstracts the social-platform messaging service: listing
// new inbound events and posting replies.
package gateway

import (
	"context"
	"strings"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

// Gateway is the messaging-platform contract the dispatcher needs. Both
// listing operations return events oldest-first.
type Gateway interface {
	// ListMentions returns public mentions newer than sinceID.
	ListMentions(ctx context.Context, sinceID int64) ([]model.InboundEvent, error)

	// ListDirectMessages returns direct messages newer than sinceID.
	ListDirectMessages(ctx context.Context, sinceID int64) ([]model.InboundEvent, error)

	// Reply posts a threaded reply to the given inbound message and
	// returns the outbound message id.
	Reply(ctx context.Context, inReplyTo int64, screenName, text string) (int64, error)

	// SendDirectMessage sends a DM and returns the outbound message id.
	SendDirectMessage(ctx context.Context, recipientID, text string) (int64, error)
}

// MediaFetcher retrieves image bytes that require the gateway's
// authenticated session, such as direct-message attachments.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, url string) ([]byte, error)
}

// CleanText strips @handles and URL tokens from inbound text so only the
// user's own words reach sentiment interpretation.
func CleanText(text string) string {
	var kept []string
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, "http") || strings.HasPrefix(word, "@") {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
