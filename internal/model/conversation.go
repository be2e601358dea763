// Package model defines data structures for the reflection bot.
package model

import (
	"time"
)

// PendingConfirmation marks a yes/no question whose answer must be
// interpreted on the next turn.
type PendingConfirmation string

const (
	PendingNone   PendingConfirmation = ""
	PendingSelfie PendingConfirmation = "selfie"
)

// MaxTurns is the turn budget per conversation. At NumMessages == MaxTurns-1
// the bot replies with an ending excuse; at MaxTurns the conversation is
// terminal.
const MaxTurns = 5

// FaceStats summarizes the face records of an image analysis. Computed once
// per conversation.
type FaceStats struct {
	FaceCount          int `bson:"face_count" json:"face_count"`
	ProminentFaceCount int `bson:"prominent_face_count" json:"prominent_face_count"`
	ChildFaceCount     int `bson:"child_face_count" json:"child_face_count"`
}

// Conversation is one image thread (or, for direct messages, the active
// thread with one sender). Records are never deleted: superseded or
// exhausted conversations are retired with Active=false and kept for audit.
type Conversation struct {
	Image   string  `bson:"image" json:"image"`
	Sender  string  `bson:"sender" json:"sender"`
	Channel Channel `bson:"channel" json:"channel"`
	Active  bool    `bson:"active" json:"active"`

	NumMessages  int      `bson:"num_messages" json:"num_messages"`
	History      []string `bson:"history" json:"history"`
	UsedConcepts []string `bson:"used_concepts" json:"used_concepts"`

	IsSelfie bool                `bson:"is_selfie" json:"is_selfie"`
	Pending  PendingConfirmation `bson:"pending_confirmation" json:"pending_confirmation"`

	Analysis  *ImageAnalysis `bson:"image_analysis,omitempty" json:"image_analysis,omitempty"`
	FaceStats *FaceStats     `bson:"face_stats,omitempty" json:"face_stats,omitempty"`
	Topic     string         `bson:"topic" json:"topic"`

	InvolvedMessageIDs []int64 `bson:"involved_message_ids" json:"involved_message_ids"`
	LastReplyID        int64   `bson:"last_reply_id" json:"last_reply_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewConversation creates a fresh conversation at turn 0.
func NewConversation(image, sender string, channel Channel) *Conversation {
	now := time.Now()
	return &Conversation{
		Image:        image,
		Sender:       sender,
		Channel:      channel,
		Active:       true,
		History:      []string{},
		UsedConcepts: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasConcept reports whether the named question concept was already used in
// this conversation.
func (c *Conversation) HasConcept(name string) bool {
	for _, used := range c.UsedConcepts {
		if used == name {
			return true
		}
	}
	return false
}

// LastConcept returns the most recently retired question concept, or "" when
// none have been used yet.
func (c *Conversation) LastConcept() string {
	if len(c.UsedConcepts) == 0 {
		return ""
	}
	return c.UsedConcepts[len(c.UsedConcepts)-1]
}

// Exhausted reports whether the conversation is past its turn budget.
func (c *Conversation) Exhausted() bool {
	return c.NumMessages >= MaxTurns
}

// Watermarks is the singleton processing-status record: the last inbound
// message id handled on each channel.
type Watermarks struct {
	LastMention       int64 `bson:"last_mention" json:"last_mention"`
	LastDirectMessage int64 `bson:"last_direct_message" json:"last_direct_message"`
}
