package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/snapshot-reflect/reflectbot/internal/gateway"
	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/store"
	"github.com/snapshot-reflect/reflectbot/pkg/logger"
	"github.com/snapshot-reflect/reflectbot/pkg/metrics"
)

// Poller pulls inbound batches from the gateway and feeds them to the
// dispatcher, advancing the stored watermarks. Direct messages are drained
// before mentions on every pass.
type Poller struct {
	gw     gateway.Gateway
	status store.StatusStore
	disp   *Dispatcher
	log    *logger.Logger
	tracer trace.Tracer
}

// NewPoller wires the polling loop.
func NewPoller(gw gateway.Gateway, status store.StatusStore, disp *Dispatcher, log *logger.Logger) *Poller {
	if log == nil {
		log = logger.Global()
	}
	return &Poller{
		gw:     gw,
		status: status,
		disp:   disp,
		log:    log,
		tracer: otel.Tracer("poller"),
	}
}

// Run executes one full polling pass. A listing failure on one channel does
// not prevent the other channel from being polled; the first error is
// returned after both channels have been attempted.
func (p *Poller) Run(ctx context.Context) error {
	dmErr := p.pollChannel(ctx, model.ChannelDirect)
	mentionErr := p.pollChannel(ctx, model.ChannelMention)
	if dmErr != nil {
		return dmErr
	}
	return mentionErr
}

// pollChannel lists one channel since its watermark, processes events oldest
// first, and advances the watermark only when the batch was non-empty. A
// failing event is logged and skipped; it never blocks later events, and the
// watermark still advances past it.
func (p *Poller) pollChannel(ctx context.Context, channel model.Channel) error {
	ctx, span := p.tracer.Start(ctx, "poll."+string(channel))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.BatchDuration.WithLabelValues(string(channel)).Observe(time.Since(start).Seconds())
	}()

	wm, err := p.status.Watermarks(ctx)
	if err != nil {
		return fmt.Errorf("load watermarks: %w", err)
	}

	var events []model.InboundEvent
	since := p.since(wm, channel)
	switch channel {
	case model.ChannelDirect:
		events, err = p.gw.ListDirectMessages(ctx, since)
	default:
		events, err = p.gw.ListMentions(ctx, since)
	}
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues("gateway").Inc()
		return fmt.Errorf("list %s events: %w", channel, err)
	}

	span.SetAttributes(attribute.Int("events", len(events)))
	if len(events) == 0 {
		return nil
	}

	p.log.Info("processing batch",
		zap.String("channel", string(channel)),
		zap.Int("events", len(events)),
		zap.Int64("since", since),
	)

	for i := range events {
		ev := &events[i]
		if err := p.handle(ctx, channel, ev); err != nil {
			p.log.Error("event processing failed",
				zap.String("channel", string(channel)),
				zap.Int64("event_id", ev.ID),
				zap.Error(err),
			)
		}
	}

	newest := events[len(events)-1].ID
	if err := p.advanceWatermark(ctx, channel, newest); err != nil {
		return fmt.Errorf("advance watermark: %w", err)
	}
	return nil
}

func (p *Poller) handle(ctx context.Context, channel model.Channel, ev *model.InboundEvent) error {
	if channel == model.ChannelDirect {
		return p.disp.HandleDirectMessage(ctx, ev)
	}
	return p.disp.HandleMention(ctx, ev)
}

func (p *Poller) since(wm model.Watermarks, channel model.Channel) int64 {
	if channel == model.ChannelDirect {
		return wm.LastDirectMessage
	}
	return wm.LastMention
}

func (p *Poller) advanceWatermark(ctx context.Context, channel model.Channel, id int64) error {
	if channel == model.ChannelDirect {
		return p.status.SetLastDirectMessage(ctx, id)
	}
	return p.status.SetLastMention(ctx, id)
}
