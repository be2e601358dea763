package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/snapshot-reflect/reflectbot/internal/gateway"
	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/question"
	"github.com/snapshot-reflect/reflectbot/internal/store"
	"github.com/snapshot-reflect/reflectbot/pkg/logger"
	"github.com/snapshot-reflect/reflectbot/pkg/metrics"
)

// auditPublisher is the slice of the audit client the dispatcher needs.
// A nil publisher disables auditing.
type auditPublisher interface {
	Publish(ctx context.Context, ev *model.TurnEvent) (uint64, error)
}

// Dispatcher routes one inbound event to its conversation: it starts new
// conversations for events carrying images, resolves replies to existing
// records, and applies the turn-count policy (questions, the closing excuse,
// then silence).
type Dispatcher struct {
	store    store.ConversationStore
	gw       gateway.Gateway
	engine   *Engine
	prompter *question.Prompter
	auditor  auditPublisher
	log      *logger.Logger
}

// NewDispatcher wires the dispatcher. auditor may be nil.
func NewDispatcher(
	st store.ConversationStore,
	gw gateway.Gateway,
	engine *Engine,
	prompter *question.Prompter,
	auditor auditPublisher,
	log *logger.Logger,
) *Dispatcher {
	if log == nil {
		log = logger.Global()
	}
	return &Dispatcher{
		store:    st,
		gw:       gw,
		engine:   engine,
		prompter: prompter,
		auditor:  auditor,
		log:      log,
	}
}

// HandleMention processes one public mention. Mentions with an attached
// image start a new conversation; replies are resolved through the thread
// reference. A reply that matches no conversation, or more than one, gets
// the generic photo prompt and leaves every record untouched.
func (d *Dispatcher) HandleMention(ctx context.Context, ev *model.InboundEvent) error {
	if ev.HasImage() {
		conv := model.NewConversation(ev.ImageURL, ev.SenderID, model.ChannelMention)
		conv.InvolvedMessageIDs = append(conv.InvolvedMessageIDs, ev.ID)
		if err := d.store.Insert(ctx, conv); err != nil {
			metrics.RecordEvent(string(model.ChannelMention), "error")
			return fmt.Errorf("insert conversation: %w", err)
		}
		metrics.ConversationsStarted.WithLabelValues(string(model.ChannelMention)).Inc()
		return d.advance(ctx, conv, ev)
	}

	if ev.InReplyTo == 0 {
		// Not a reply at all; a zero thread reference must not match
		// records that never got an outbound reply.
		return d.sendPrompt(ctx, ev)
	}

	matches, err := d.store.FindByLastReply(ctx, ev.InReplyTo)
	if err != nil {
		metrics.RecordEvent(string(model.ChannelMention), "error")
		return fmt.Errorf("resolve thread: %w", err)
	}
	if len(matches) != 1 {
		d.log.Debug("mention matched no single conversation",
			zap.Int64("in_reply_to", ev.InReplyTo),
			zap.Int("matches", len(matches)),
		)
		return d.sendPrompt(ctx, ev)
	}
	conv := matches[0]
	return d.advance(ctx, &conv, ev)
}

// HandleDirectMessage processes one direct message. An image retires the
// sender's previous conversations and starts a fresh one; plain text
// continues the sender's single active conversation. A sender with no
// active conversation, or more than one, gets the photo prompt.
func (d *Dispatcher) HandleDirectMessage(ctx context.Context, ev *model.InboundEvent) error {
	if ev.HasImage() {
		if err := d.store.RetireBySender(ctx, ev.SenderID); err != nil {
			metrics.RecordEvent(string(model.ChannelDirect), "error")
			return fmt.Errorf("retire conversations: %w", err)
		}
		conv := model.NewConversation(ev.ImageURL, ev.SenderID, model.ChannelDirect)
		conv.InvolvedMessageIDs = append(conv.InvolvedMessageIDs, ev.ID)
		if err := d.store.Insert(ctx, conv); err != nil {
			metrics.RecordEvent(string(model.ChannelDirect), "error")
			return fmt.Errorf("insert conversation: %w", err)
		}
		metrics.ConversationsStarted.WithLabelValues(string(model.ChannelDirect)).Inc()
		return d.advance(ctx, conv, ev)
	}

	matches, err := d.store.FindActiveBySender(ctx, ev.SenderID)
	if err != nil {
		metrics.RecordEvent(string(model.ChannelDirect), "error")
		return fmt.Errorf("resolve sender: %w", err)
	}
	if len(matches) != 1 {
		d.log.Debug("direct message matched no single conversation",
			zap.String("sender", ev.SenderID),
			zap.Int("matches", len(matches)),
		)
		return d.sendPrompt(ctx, ev)
	}
	conv := matches[0]
	return d.advance(ctx, &conv, ev)
}

// advance runs one turn of the conversation and persists the result. The
// reply is sent before the record is saved, so a persistence failure can
// produce a duplicate question on retry but never a silent dropped turn.
func (d *Dispatcher) advance(ctx context.Context, conv *model.Conversation, ev *model.InboundEvent) error {
	log := d.log.WithConversation(conv.Image, conv.Sender)

	if conv.NumMessages >= model.MaxTurns {
		log.Debug("conversation complete, ignoring event",
			zap.Int("turn", conv.NumMessages),
			zap.Int64("event_id", ev.ID),
		)
		metrics.RecordEvent(string(ev.Channel), "terminal")
		return nil
	}

	var (
		text string
		kind model.TurnKind
		err  error
	)
	if conv.NumMessages == model.MaxTurns-1 {
		text = d.engine.Excuse()
		kind = model.TurnExcuse
		conv.NumMessages++
		conv.History = append(conv.History, text)
	} else {
		text, err = d.engine.NextReply(ctx, conv, gateway.CleanText(ev.Text))
		if err != nil {
			metrics.RecordEvent(string(ev.Channel), "error")
			return err
		}
		kind = model.TurnQuestion
	}

	outboundID, err := d.send(ctx, ev, text)
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues("gateway").Inc()
		metrics.RecordEvent(string(ev.Channel), "error")
		return fmt.Errorf("send reply: %w", err)
	}

	conv.LastReplyID = outboundID
	conv.InvolvedMessageIDs = append(conv.InvolvedMessageIDs, ev.ID, outboundID)
	if err := d.store.Save(ctx, conv); err != nil {
		metrics.RecordEvent(string(ev.Channel), "error")
		return fmt.Errorf("save conversation: %w", err)
	}

	log.Info("sent reply",
		zap.String("kind", string(kind)),
		zap.Int("turn", conv.NumMessages),
		zap.Int64("outbound_id", outboundID),
	)
	metrics.RecordEvent(string(ev.Channel), string(kind))
	d.audit(ctx, conv, ev, kind, text, outboundID)
	return nil
}

// sendPrompt replies with the generic "send me a photo" prompt without
// creating or touching any conversation record.
func (d *Dispatcher) sendPrompt(ctx context.Context, ev *model.InboundEvent) error {
	text, err := d.prompter.Generate()
	if err != nil {
		metrics.RecordEvent(string(ev.Channel), "error")
		return fmt.Errorf("generate prompt: %w", err)
	}
	outboundID, err := d.send(ctx, ev, text)
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues("gateway").Inc()
		metrics.RecordEvent(string(ev.Channel), "error")
		return fmt.Errorf("send prompt: %w", err)
	}
	metrics.RecordEvent(string(ev.Channel), string(model.TurnPromptFallback))
	d.audit(ctx, &model.Conversation{Sender: ev.SenderID, Channel: ev.Channel},
		ev, model.TurnPromptFallback, text, outboundID)
	return nil
}

func (d *Dispatcher) send(ctx context.Context, ev *model.InboundEvent, text string) (int64, error) {
	if ev.Channel == model.ChannelDirect {
		return d.gw.SendDirectMessage(ctx, ev.SenderID, text)
	}
	return d.gw.Reply(ctx, ev.ID, ev.ScreenName, text)
}

// audit publishes a turn record. Audit failures are logged and never fail
// the turn.
func (d *Dispatcher) audit(ctx context.Context, conv *model.Conversation, ev *model.InboundEvent, kind model.TurnKind, text string, outboundID int64) {
	if d.auditor == nil {
		return
	}
	turn := &model.TurnEvent{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Channel:    ev.Channel,
		Kind:       kind,
		Image:      conv.Image,
		Sender:     conv.Sender,
		Turn:       conv.NumMessages,
		InboundID:  ev.ID,
		OutboundID: outboundID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := d.auditor.Publish(ctx, turn); err != nil {
		d.log.Warn("audit publish failed", zap.Error(err))
	}
}
