package model

import (
	"time"
)

// Channel identifies where an inbound event arrived.
type Channel string

const (
	// ChannelMention is the public, thread-scoped channel: replies are
	// linked by in-reply-to references.
	ChannelMention Channel = "mention"
	// ChannelDirect is the sender-scoped channel: one active conversation
	// per sender, no threading.
	ChannelDirect Channel = "direct"
)

// InboundEvent is one message received from the gateway.
type InboundEvent struct {
	ID         int64   `json:"id"`
	Channel    Channel `json:"channel"`
	SenderID   string  `json:"sender_id"`
	ScreenName string  `json:"screen_name,omitempty"`
	Text       string  `json:"text"`
	ImageURL   string  `json:"image_url,omitempty"`
	InReplyTo  int64   `json:"in_reply_to,omitempty"`
	CreatedAt  time.Time
}

// HasImage reports whether the event carries an attached image.
func (e *InboundEvent) HasImage() bool {
	return e.ImageURL != ""
}

// TurnKind classifies the outcome of one processed inbound event.
type TurnKind string

const (
	// TurnQuestion is a grammar-generated question reply.
	TurnQuestion TurnKind = "question"
	// TurnExcuse is a conversation-ending excuse.
	TurnExcuse TurnKind = "excuse"
	// TurnPromptFallback is the generic photo prompt sent when no
	// conversation could be resolved.
	TurnPromptFallback TurnKind = "prompt_fallback"
)

// TurnEvent is the audit record published for every reply the bot sends.
type TurnEvent struct {
	ID         string    `json:"id"`
	Channel    Channel   `json:"channel"`
	Kind       TurnKind  `json:"kind"`
	Image      string    `json:"image,omitempty"`
	Sender     string    `json:"sender"`
	Turn       int       `json:"turn"`
	InboundID  int64     `json:"inbound_id"`
	OutboundID int64     `json:"outbound_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
