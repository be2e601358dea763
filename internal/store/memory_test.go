package store_test

import (
	"context"
	"testing"

	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/store"
)

func TestMemory_InsertAndFindByLastReply(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	conv := model.NewConversation("img-1", "alice", model.ChannelMention)
	conv.LastReplyID = 100
	if err := s.Insert(ctx, conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	found, err := s.FindByLastReply(ctx, 100)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 || found[0].Image != "img-1" {
		t.Fatalf("unexpected result %+v", found)
	}

	found, err = s.FindByLastReply(ctx, 999)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no match, got %+v", found)
	}
}

func TestMemory_SaveRequiresExistingRecord(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	conv := model.NewConversation("img-1", "alice", model.ChannelMention)
	if err := s.Save(ctx, conv); err == nil {
		t.Fatal("expected error saving unknown record")
	}

	if err := s.Insert(ctx, conv); err != nil {
		t.Fatalf("insert: %v", err)
	}
	conv.NumMessages = 3
	if err := s.Save(ctx, conv); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := s.Get("img-1")
	if !ok || got.NumMessages != 3 {
		t.Fatalf("save not applied: %+v", got)
	}
}

func TestMemory_RetireBySender(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	old := model.NewConversation("img-old", "bob", model.ChannelDirect)
	mention := model.NewConversation("img-mention", "bob", model.ChannelMention)
	other := model.NewConversation("img-other", "carol", model.ChannelDirect)
	for _, c := range []*model.Conversation{old, mention, other} {
		if err := s.Insert(ctx, c); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := s.RetireBySender(ctx, "bob"); err != nil {
		t.Fatalf("retire: %v", err)
	}

	active, err := s.FindActiveBySender(ctx, "bob")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected bob's direct conversations retired, got %+v", active)
	}

	// Retirement is channel and sender scoped.
	if got, _ := s.Get("img-mention"); !got.Active {
		t.Fatal("mention conversation must not be retired")
	}
	if got, _ := s.Get("img-other"); !got.Active {
		t.Fatal("other sender's conversation must not be retired")
	}
}

func TestMemory_Watermarks(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	wm, err := s.Watermarks(ctx)
	if err != nil {
		t.Fatalf("watermarks: %v", err)
	}
	if wm.LastMention != 0 || wm.LastDirectMessage != 0 {
		t.Fatalf("expected zero watermarks, got %+v", wm)
	}

	if err := s.SetLastMention(ctx, 42); err != nil {
		t.Fatalf("set mention: %v", err)
	}
	if err := s.SetLastDirectMessage(ctx, 7); err != nil {
		t.Fatalf("set dm: %v", err)
	}

	wm, err = s.Watermarks(ctx)
	if err != nil {
		t.Fatalf("watermarks: %v", err)
	}
	if wm.LastMention != 42 || wm.LastDirectMessage != 7 {
		t.Fatalf("unexpected watermarks %+v", wm)
	}
}
