package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

// Memory is an in-memory ConversationStore and StatusStore, used in tests
// and for local development without a database.
type Memory struct {
	mu            sync.RWMutex
	conversations map[string]*model.Conversation
	watermarks    model.Watermarks
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{conversations: make(map[string]*model.Conversation)}
}

// Insert stores a new conversation record.
func (s *Memory) Insert(ctx context.Context, conv *model.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *conv
	s.conversations[conv.Image] = &cp
	return nil
}

// FindByLastReply returns the conversations whose last reply id matches.
func (s *Memory) FindByLastReply(ctx context.Context, replyID int64) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []model.Conversation
	for _, conv := range s.conversations {
		if conv.LastReplyID == replyID {
			found = append(found, *conv)
		}
	}
	return found, nil
}

// FindActiveBySender returns the active direct-message conversations for a
// sender.
func (s *Memory) FindActiveBySender(ctx context.Context, senderID string) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []model.Conversation
	for _, conv := range s.conversations {
		if conv.Sender == senderID && conv.Channel == model.ChannelDirect && conv.Active {
			found = append(found, *conv)
		}
	}
	return found, nil
}

// Save writes the whole record back, keyed by image.
func (s *Memory) Save(ctx context.Context, conv *model.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.conversations[conv.Image]; !exists {
		return fmt.Errorf("store: save conversation: no record for image %q", conv.Image)
	}
	conv.UpdatedAt = time.Now()
	cp := *conv
	s.conversations[conv.Image] = &cp
	return nil
}

// RetireBySender flags every direct-message conversation for the sender
// inactive.
func (s *Memory) RetireBySender(ctx context.Context, senderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conv := range s.conversations {
		if conv.Sender == senderID && conv.Channel == model.ChannelDirect {
			conv.Active = false
			conv.UpdatedAt = time.Now()
		}
	}
	return nil
}

// Watermarks returns the processing-status watermarks.
func (s *Memory) Watermarks(ctx context.Context) (model.Watermarks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watermarks, nil
}

// SetLastMention advances the mention watermark.
func (s *Memory) SetLastMention(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watermarks.LastMention = id
	return nil
}

// SetLastDirectMessage advances the direct-message watermark.
func (s *Memory) SetLastDirectMessage(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watermarks.LastDirectMessage = id
	return nil
}

// Ping always succeeds.
func (s *Memory) Ping(ctx context.Context) error {
	return nil
}

// Get returns a copy of the conversation for the image, for tests.
func (s *Memory) Get(image string) (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[image]
	if !ok {
		return model.Conversation{}, false
	}
	return *conv, true
}
