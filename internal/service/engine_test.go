package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/snapshot-reflect/reflectbot/internal/gateway"
	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/question"
	"github.com/snapshot-reflect/reflectbot/internal/service"
)

// stubAnalyzer serves one canned analysis and counts calls.
type stubAnalyzer struct {
	analysis  *model.ImageAnalysis
	err       error
	urlCalls  int
	byteCalls int
}

func (s *stubAnalyzer) AnalyzeURL(ctx context.Context, url string) (*model.ImageAnalysis, error) {
	s.urlCalls++
	return s.analysis, s.err
}

func (s *stubAnalyzer) AnalyzeBytes(ctx context.Context, data []byte) (*model.ImageAnalysis, error) {
	s.byteCalls++
	return s.analysis, s.err
}

type stubFetcher struct {
	data  []byte
	err   error
	calls int
}

func (s *stubFetcher) FetchMedia(ctx context.Context, url string) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

type stubScorer struct {
	score float64
}

func (s *stubScorer) Score(text string) float64 {
	return s.score
}

// engineRules is a one-alternative-per-symbol table, so every expansion is
// deterministic regardless of randomness.
var engineRules = map[string][]string{
	"single_person":   {"#Isselfie#"},
	"Isselfie":        {"oh, is that you in the photo?"},
	"followup_selfie": {"#Social#"},
	"Social":          {"who were you with?"},
	"people_group":    {"#Where#"},
	"Where":           {"where was this taken?"},
	"dog":             {"#DogA#"},
	"DogA":            {"what's the pup's name?"},
	"Feelings":        {"how did you feel?"},
	"LinkFeelings":    {"did taking it change how you feel?"},
	"origin":          {"#Wild#"},
	"Wild":            {"why this photo?"},
}

func newEngine(analyzer *stubAnalyzer, fetcher gateway.MediaFetcher, score float64) *service.Engine {
	rng := rand.New(rand.NewSource(1))
	selector := question.NewSelector(engineRules, rand.New(rand.NewSource(1)), nil)
	return service.NewEngine(analyzer, fetcher, &stubScorer{score: score}, selector, rng, nil)
}

func onePersonAnalysis() *model.ImageAnalysis {
	return &model.ImageAnalysis{
		Width:  100,
		Height: 100,
		Faces:  []model.Face{{AgeEstimate: 30, Rect: model.Rect{Width: 60, Height: 60}}},
	}
}

func TestEngine_FirstTurnSinglePersonAsksSelfie(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: onePersonAnalysis()}
	e := newEngine(analyzer, nil, 0)

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	text, err := e.NextReply(context.Background(), conv, "")
	if err != nil {
		t.Fatalf("next reply: %v", err)
	}

	if text != "oh, is that you in the photo?" {
		t.Fatalf("expected selfie question, got %q", text)
	}
	if conv.Pending != model.PendingSelfie {
		t.Fatalf("expected pending selfie, got %q", conv.Pending)
	}
	if conv.NumMessages != 1 || len(conv.History) != 1 {
		t.Fatalf("turn bookkeeping wrong: %d messages, %d history", conv.NumMessages, len(conv.History))
	}
	if !conv.HasConcept(question.SelfieConcept) {
		t.Fatalf("expected %s concept used, got %v", question.SelfieConcept, conv.UsedConcepts)
	}
	if analyzer.urlCalls != 1 {
		t.Fatalf("expected 1 analysis call, got %d", analyzer.urlCalls)
	}
}

func TestEngine_SelfieConfirmationSteersFollowup(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: onePersonAnalysis()}
	e := newEngine(analyzer, nil, 0.6)

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	if _, err := e.NextReply(context.Background(), conv, ""); err != nil {
		t.Fatalf("turn 0: %v", err)
	}

	text, err := e.NextReply(context.Background(), conv, "yes it is me")
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if !conv.IsSelfie {
		t.Fatal("positive answer must mark the conversation a selfie")
	}
	if conv.Pending != model.PendingNone {
		t.Fatalf("pending must clear, got %q", conv.Pending)
	}
	if text != "who were you with?" {
		t.Fatalf("expected selfie followup, got %q", text)
	}
	// Analysis is cached across turns.
	if analyzer.urlCalls != 1 {
		t.Fatalf("expected 1 analysis call, got %d", analyzer.urlCalls)
	}
}

func TestEngine_SelfieDenialFallsBackToTopic(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: onePersonAnalysis()}
	e := newEngine(analyzer, nil, -0.5)

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	if _, err := e.NextReply(context.Background(), conv, ""); err != nil {
		t.Fatalf("turn 0: %v", err)
	}

	text, err := e.NextReply(context.Background(), conv, "no that is not me")
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if conv.IsSelfie {
		t.Fatal("negative answer must not mark the conversation a selfie")
	}
	if text != "where was this taken?" {
		t.Fatalf("expected people question, got %q", text)
	}
}

func TestEngine_FeelingsLinksFollowup(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &model.ImageAnalysis{
		Tags:   []model.Tag{{Name: "dog", Confidence: 0.9}},
		Width:  100,
		Height: 100,
	}}
	e := newEngine(analyzer, nil, 0)

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	conv.NumMessages = 1
	conv.UsedConcepts = []string{"DogA", question.FeelingsConcept}

	text, err := e.NextReply(context.Background(), conv, "pretty good actually")
	if err != nil {
		t.Fatalf("next reply: %v", err)
	}
	if text != "did taking it change how you feel?" {
		t.Fatalf("expected feelings link, got %q", text)
	}
}

func TestEngine_DirectChannelFetchesBytes(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &model.ImageAnalysis{
		Tags:   []model.Tag{{Name: "dog", Confidence: 0.9}},
		Width:  10,
		Height: 10,
	}}
	fetcher := &stubFetcher{data: []byte{0xFF, 0xD8}}
	e := newEngine(analyzer, fetcher, 0)

	conv := model.NewConversation("dm-media-url", "bob", model.ChannelDirect)
	conv.NumMessages = 1
	if _, err := e.NextReply(context.Background(), conv, "hi"); err != nil {
		t.Fatalf("next reply: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("expected 1 media fetch, got %d", fetcher.calls)
	}
	if analyzer.byteCalls != 1 || analyzer.urlCalls != 0 {
		t.Fatalf("expected bytes analysis, got url=%d bytes=%d", analyzer.urlCalls, analyzer.byteCalls)
	}
}

func TestEngine_AnalysisFailureSurfaces(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("service down")}
	e := newEngine(analyzer, nil, 0)

	conv := model.NewConversation("img", "alice", model.ChannelMention)
	if _, err := e.NextReply(context.Background(), conv, ""); err == nil {
		t.Fatal("expected analysis error to surface")
	}
	if conv.NumMessages != 0 {
		t.Fatal("failed turn must not advance the conversation")
	}
}

func TestEngine_ExcuseFromPool(t *testing.T) {
	e := newEngine(&stubAnalyzer{}, nil, 0)
	pool := make(map[string]bool, len(question.Excuses))
	for _, ex := range question.Excuses {
		pool[ex] = true
	}
	for i := 0; i < 20; i++ {
		if ex := e.Excuse(); !pool[ex] {
			t.Fatalf("excuse %q not in pool", ex)
		}
	}
}
