package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/question"
	"github.com/snapshot-reflect/reflectbot/internal/service"
	"github.com/snapshot-reflect/reflectbot/internal/store"
)

// sentMessage records one outbound send on the stub gateway.
type sentMessage struct {
	inReplyTo int64
	recipient string
	text      string
}

// stubGateway serves canned inbound batches and records sends. Outbound ids
// count up from 1000.
type stubGateway struct {
	mentions []model.InboundEvent
	dms      []model.InboundEvent
	listErr  error
	sendErr  error

	replies   []sentMessage
	dmsSent   []sentMessage
	listOrder []string
	nextID    int64
}

func (g *stubGateway) ListMentions(ctx context.Context, sinceID int64) ([]model.InboundEvent, error) {
	g.listOrder = append(g.listOrder, "mentions")
	return g.mentions, g.listErr
}

func (g *stubGateway) ListDirectMessages(ctx context.Context, sinceID int64) ([]model.InboundEvent, error) {
	g.listOrder = append(g.listOrder, "dms")
	return g.dms, g.listErr
}

func (g *stubGateway) Reply(ctx context.Context, inReplyTo int64, screenName, text string) (int64, error) {
	if g.sendErr != nil {
		return 0, g.sendErr
	}
	g.nextID++
	g.replies = append(g.replies, sentMessage{inReplyTo: inReplyTo, text: text})
	return 1000 + g.nextID, nil
}

func (g *stubGateway) SendDirectMessage(ctx context.Context, recipientID, text string) (int64, error) {
	if g.sendErr != nil {
		return 0, g.sendErr
	}
	g.nextID++
	g.dmsSent = append(g.dmsSent, sentMessage{recipient: recipientID, text: text})
	return 1000 + g.nextID, nil
}

func (g *stubGateway) FetchMedia(ctx context.Context, url string) ([]byte, error) {
	return []byte{0xFF, 0xD8}, nil
}

const promptText = "send me a photo!"

func newDispatcher(gw *stubGateway, mem *store.Memory, analyzer *stubAnalyzer) *service.Dispatcher {
	engine := newEngine(analyzer, gw, 0)
	prompter := question.NewPrompter(map[string][]string{"origin": {promptText}}, rand.New(rand.NewSource(1)))
	return service.NewDispatcher(mem, gw, engine, prompter, nil, nil)
}

func dogAnalysis() *model.ImageAnalysis {
	return &model.ImageAnalysis{
		Tags:   []model.Tag{{Name: "dog", Confidence: 0.9}},
		Width:  100,
		Height: 100,
	}
}

func TestHandleMention_ImageStartsConversation(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	ev := &model.InboundEvent{
		ID:         10,
		Channel:    model.ChannelMention,
		SenderID:   "alice",
		ScreenName: "alice",
		ImageURL:   "https://img/1.jpg",
	}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	conv, ok := mem.Get("https://img/1.jpg")
	if !ok {
		t.Fatal("conversation not stored")
	}
	if conv.NumMessages != 1 {
		t.Fatalf("expected turn 1, got %d", conv.NumMessages)
	}
	if len(gw.replies) != 1 || gw.replies[0].inReplyTo != 10 {
		t.Fatalf("unexpected replies %+v", gw.replies)
	}
	if conv.LastReplyID == 0 {
		t.Fatal("last reply id not recorded")
	}
	if len(conv.InvolvedMessageIDs) != 2 {
		t.Fatalf("expected inbound and outbound ids, got %v", conv.InvolvedMessageIDs)
	}
}

func TestHandleMention_ReplyContinuesThread(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	conv.NumMessages = 1
	conv.LastReplyID = 500
	conv.UsedConcepts = []string{"DogA"}
	if err := mem.Insert(context.Background(), conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 11, Channel: model.ChannelMention, SenderID: "alice", InReplyTo: 500, Text: "his name is Rex"}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, _ := mem.Get("img")
	if got.NumMessages != 2 {
		t.Fatalf("expected turn 2, got %d", got.NumMessages)
	}
	if got.LastReplyID == 500 {
		t.Fatal("last reply id must advance")
	}
}

func TestHandleMention_UnmatchedGetsPrompt(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	ev := &model.InboundEvent{ID: 12, Channel: model.ChannelMention, SenderID: "alice", InReplyTo: 999, Text: "hello?"}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(gw.replies) != 1 || gw.replies[0].text != promptText {
		t.Fatalf("expected photo prompt, got %+v", gw.replies)
	}
}

func TestHandleMention_NoThreadReferenceGetsPrompt(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	// A record that never got an outbound reply must not be matched by a
	// mention that is not a reply.
	conv := model.NewConversation("img", "alice", model.ChannelMention)
	if err := mem.Insert(context.Background(), conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 16, Channel: model.ChannelMention, SenderID: "alice", Text: "hi there"}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(gw.replies) != 1 || gw.replies[0].text != promptText {
		t.Fatalf("expected photo prompt, got %+v", gw.replies)
	}
	if got, _ := mem.Get("img"); got.NumMessages != 0 {
		t.Fatal("record must not advance")
	}
}

func TestHandleMention_AmbiguousThreadGetsPrompt(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	for _, img := range []string{"img-a", "img-b"} {
		conv := model.NewConversation(img, "alice", model.ChannelMention)
		conv.LastReplyID = 500
		if err := mem.Insert(context.Background(), conv); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	ev := &model.InboundEvent{ID: 13, Channel: model.ChannelMention, SenderID: "alice", InReplyTo: 500}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(gw.replies) != 1 || gw.replies[0].text != promptText {
		t.Fatalf("expected photo prompt on ambiguity, got %+v", gw.replies)
	}

	// Neither record advanced.
	for _, img := range []string{"img-a", "img-b"} {
		if got, _ := mem.Get(img); got.NumMessages != 0 {
			t.Fatalf("%s advanced on ambiguous reply", img)
		}
	}
}

func TestHandleMention_FourthTurnSendsExcuse(t *testing.T) {
	// The analyzer errors on any call, proving the excuse path touches
	// neither analysis nor the question grammar.
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{err: errors.New("must not be called")})

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	conv.NumMessages = model.MaxTurns - 1
	conv.LastReplyID = 500
	if err := mem.Insert(context.Background(), conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 14, Channel: model.ChannelMention, SenderID: "alice", InReplyTo: 500, Text: "and then what"}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(gw.replies) != 1 {
		t.Fatalf("expected one reply, got %d", len(gw.replies))
	}
	pool := make(map[string]bool, len(question.Excuses))
	for _, ex := range question.Excuses {
		pool[ex] = true
	}
	if !pool[gw.replies[0].text] {
		t.Fatalf("reply %q is not an excuse", gw.replies[0].text)
	}

	got, _ := mem.Get("img")
	if got.NumMessages != model.MaxTurns {
		t.Fatalf("expected terminal turn count, got %d", got.NumMessages)
	}
}

func TestHandleMention_CompletedConversationStaysSilent(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	conv.NumMessages = model.MaxTurns
	conv.LastReplyID = 500
	if err := mem.Insert(context.Background(), conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 15, Channel: model.ChannelMention, SenderID: "alice", InReplyTo: 500, Text: "hello again"}
	if err := d.HandleMention(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(gw.replies) != 0 {
		t.Fatalf("expected silence, got %+v", gw.replies)
	}
}

func TestHandleDirectMessage_ImageRetiresAndStarts(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	old := model.NewConversation("img-old", "bob", model.ChannelDirect)
	if err := mem.Insert(context.Background(), old); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 20, Channel: model.ChannelDirect, SenderID: "bob", ImageURL: "img-new"}
	if err := d.HandleDirectMessage(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got, _ := mem.Get("img-old"); got.Active {
		t.Fatal("previous conversation must be retired")
	}
	fresh, ok := mem.Get("img-new")
	if !ok || fresh.NumMessages != 1 {
		t.Fatalf("fresh conversation not started: %+v", fresh)
	}
	if len(gw.dmsSent) != 1 || gw.dmsSent[0].recipient != "bob" {
		t.Fatalf("unexpected dms %+v", gw.dmsSent)
	}
}

func TestHandleDirectMessage_TextContinuesActiveConversation(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	conv := model.NewConversation("img", "bob", model.ChannelDirect)
	conv.NumMessages = 1
	conv.Analysis = dogAnalysis()
	conv.UsedConcepts = []string{"DogA"}
	if err := mem.Insert(context.Background(), conv); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ev := &model.InboundEvent{ID: 21, Channel: model.ChannelDirect, SenderID: "bob", Text: "thanks for asking"}
	if err := d.HandleDirectMessage(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, _ := mem.Get("img")
	if got.NumMessages != 2 {
		t.Fatalf("expected turn 2, got %d", got.NumMessages)
	}
}

func TestHandleDirectMessage_NoActiveConversationGetsPrompt(t *testing.T) {
	gw := &stubGateway{}
	mem := store.NewMemory()
	d := newDispatcher(gw, mem, &stubAnalyzer{analysis: dogAnalysis()})

	ev := &model.InboundEvent{ID: 22, Channel: model.ChannelDirect, SenderID: "bob", Text: "hello"}
	if err := d.HandleDirectMessage(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(gw.dmsSent) != 1 || gw.dmsSent[0].text != promptText {
		t.Fatalf("expected photo prompt, got %+v", gw.dmsSent)
	}
}
