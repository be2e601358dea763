// Package service contains the conversation state machine, the inbound
// event dispatcher, and the polling loop that drives them.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/snapshot-reflect/reflectbot/internal/gateway"
	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/question"
	"github.com/snapshot-reflect/reflectbot/internal/sentiment"
	"github.com/snapshot-reflect/reflectbot/internal/topic"
	"github.com/snapshot-reflect/reflectbot/internal/vision"
	"github.com/snapshot-reflect/reflectbot/pkg/logger"
	"github.com/snapshot-reflect/reflectbot/pkg/metrics"
)

// Engine advances one conversation by one turn: it interprets a pending
// yes/no answer, classifies the image topic, and selects the next question.
// It mutates only the record it is handed; persistence is the caller's job.
type Engine struct {
	analyzer vision.Analyzer
	fetcher  gateway.MediaFetcher
	scorer   sentiment.Scorer
	selector *question.Selector
	rng      *rand.Rand
	log      *logger.Logger
}

// NewEngine creates a conversation engine. fetcher may be nil when the
// deployment has no authenticated media channel. A nil rng gets a
// time-seeded source.
func NewEngine(
	analyzer vision.Analyzer,
	fetcher gateway.MediaFetcher,
	scorer sentiment.Scorer,
	selector *question.Selector,
	rng *rand.Rand,
	log *logger.Logger,
) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logger.Global()
	}
	return &Engine{
		analyzer: analyzer,
		fetcher:  fetcher,
		scorer:   scorer,
		selector: selector,
		rng:      rng,
		log:      log,
	}
}

// NextReply produces the next question for the conversation and applies the
// turn's effects to the record: history append, turn increment, used-concept
// merge, and pending-confirmation bookkeeping.
func (e *Engine) NextReply(ctx context.Context, conv *model.Conversation, inboundText string) (string, error) {
	log := e.log.WithConversation(conv.Image, conv.Sender)

	// A pending selfie question is resolved from the inbound text before
	// anything else; the answer steers every later expansion point.
	if conv.Pending == model.PendingSelfie && inboundText != "" {
		score := e.scorer.Score(inboundText)
		conv.IsSelfie = sentiment.Affirmative(score)
		conv.Pending = model.PendingNone
		log.Debug("resolved selfie confirmation",
			zap.Float64("score", score),
			zap.Bool("is_selfie", conv.IsSelfie),
		)
	}

	if err := e.ensureAnalysis(ctx, conv); err != nil {
		return "", err
	}

	resolved := topic.Classify(conv.Analysis.Tags, *conv.FaceStats, conv.NumMessages, e.rng)
	conv.Topic = string(resolved)

	symbol := resolved.Symbol()
	if conv.IsSelfie {
		symbol = "followup_selfie"
	}
	if conv.LastConcept() == question.FeelingsConcept {
		symbol = "LinkFeelings"
	}

	log.Debug("selected expansion point",
		zap.String("topic", conv.Topic),
		zap.String("symbol", symbol),
		zap.Int("turn", conv.NumMessages),
	)

	text, concepts, err := e.selector.Next(symbol, conv.UsedConcepts)
	if err != nil {
		return "", fmt.Errorf("generate question: %w", err)
	}

	conv.UsedConcepts = append(conv.UsedConcepts, concepts...)
	if question.ContainsConcept(concepts, question.SelfieConcept) {
		conv.Pending = model.PendingSelfie
		log.Debug("asked selfie confirmation")
	} else {
		conv.Pending = model.PendingNone
	}

	conv.History = append(conv.History, text)
	conv.NumMessages++

	metrics.QuestionsGenerated.WithLabelValues(conv.Topic).Inc()
	return text, nil
}

// ensureAnalysis fetches and caches the image analysis on first use. The
// analysis is never re-fetched for the same conversation.
func (e *Engine) ensureAnalysis(ctx context.Context, conv *model.Conversation) error {
	if conv.Analysis != nil {
		if conv.FaceStats == nil {
			stats := vision.ComputeFaceStats(conv.Analysis)
			conv.FaceStats = &stats
		}
		return nil
	}

	var (
		analysis *model.ImageAnalysis
		err      error
	)
	if conv.Channel == model.ChannelDirect && e.fetcher != nil {
		// DM media is behind the gateway's authenticated session, so the
		// bytes are fetched here and handed to the analyzer directly.
		var data []byte
		data, err = e.fetcher.FetchMedia(ctx, conv.Image)
		if err != nil {
			metrics.ExternalCallFailures.WithLabelValues("gateway").Inc()
			return fmt.Errorf("fetch image: %w", err)
		}
		analysis, err = e.analyzer.AnalyzeBytes(ctx, data)
	} else {
		analysis, err = e.analyzer.AnalyzeURL(ctx, conv.Image)
	}
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues("vision").Inc()
		return fmt.Errorf("analyze image: %w", err)
	}

	stats := vision.ComputeFaceStats(analysis)
	conv.Analysis = analysis
	conv.FaceStats = &stats
	return nil
}

// Excuse picks one conversation-ending line. Excuses bypass the grammar and
// never consume question concepts.
func (e *Engine) Excuse() string {
	return question.PickExcuse(e.rng)
}
