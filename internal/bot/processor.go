package bot

import (
	"context"
	"io"
	"log/slog"

	"github.com/doston9471/telegram-quote-bot/internal/database"
	"github.com/doston9471/telegram-quote-bot/internal/metrics"
)

// Sender delivers rendered reply text to a chat. Implementations must be
// safe for concurrent use; a test double substitutes for the real transport.
type Sender interface {
	SendText(ctx context.Context, chatID ChatID, text string) error
}

// Deps provides dependencies for the update processor.
type Deps struct {
	Logger  *slog.Logger
	Store   database.Store
	Sender  Sender
	Metrics *metrics.Metrics
}

// Processor runs the full update pipeline: normalize, route, build, send.
// Each update is handled independently with no shared mutable state, so a
// single Processor serves concurrent webhook deliveries.
type Processor struct {
	log     *slog.Logger
	builder *ReplyBuilder
	sender  Sender
	metrics *metrics.Metrics
}

// NewProcessor creates a Processor from its dependencies.
func NewProcessor(deps Deps) *Processor {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{
		log:     log.With("component", "processor"),
		builder: NewReplyBuilder(deps.Store),
		sender:  deps.Sender,
		metrics: deps.Metrics,
	}
}

// HandleUpdate processes one inbound update. Every failure is absorbed here:
// store faults are logged with context, send failures are logged and
// swallowed, and non-text updates are a recognized "nothing to do" outcome.
// The webhook caller never sees an error.
func (p *Processor) HandleUpdate(ctx context.Context, src UpdateSource) {
	chatID, text, ok := Normalize(src)
	if !ok {
		p.log.DebugContext(ctx, "Update carries no text message, nothing to do")
		p.countUpdate("no_message")
		return
	}

	cmd := Route(text)
	log := p.log.With("command", string(cmd.Kind), "chat_id", string(chatID))
	if p.metrics != nil {
		p.metrics.CommandsTotal.WithLabelValues(string(cmd.Kind)).Inc()
	}

	reply, err := p.builder.Build(ctx, cmd)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build reply", "text", text, "error", err)
		p.countUpdate("internal_error")
		return
	}

	if err := p.sender.SendText(ctx, chatID, reply); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err)
		p.countSend("failed")
		p.countUpdate("handled")
		return
	}

	log.InfoContext(ctx, "Reply sent")
	p.countSend("sent")
	p.countUpdate("handled")
}

func (p *Processor) countUpdate(outcome string) {
	if p.metrics != nil {
		p.metrics.UpdatesTotal.WithLabelValues(outcome).Inc()
	}
}

func (p *Processor) countSend(status string) {
	if p.metrics != nil {
		p.metrics.OutboundSendsTotal.WithLabelValues(status).Inc()
	}
}
