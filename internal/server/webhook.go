package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
	"github.com/doston9471/telegram-quote-bot/internal/metrics"
)

// maxWebhookBody caps the accepted webhook payload size.
const maxWebhookBody = 1 << 20

// webhookHandler accepts Telegram update deliveries. It always acknowledges
// with 200 OK regardless of the internal outcome: retried deliveries on
// transient faults are not distinguishable from duplicates, so the platform
// must never see a failure response.
type webhookHandler struct {
	log       *slog.Logger
	processor *bot.Processor
	metrics   *metrics.Metrics
}

// Handle is the gin handler for the webhook endpoint. Each delivery is
// handled independently; gin serves deliveries concurrently, so a slow
// outbound send never blocks acceptance of the next webhook call.
func (h *webhookHandler) Handle(c *gin.Context) {
	start := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.WebhookDurationSeconds.Observe(time.Since(start).Seconds())
		}
	}()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.log.WarnContext(c.Request.Context(), "Failed to read webhook body", "error", err)
		h.countUpdate("parse_error")
		c.Status(http.StatusOK)
		return
	}

	src, err := bot.ParseUpdate(body)
	if err != nil {
		h.log.WarnContext(c.Request.Context(), "Failed to parse webhook payload", "error", err)
		h.countUpdate("parse_error")
		c.Status(http.StatusOK)
		return
	}

	h.processor.HandleUpdate(c.Request.Context(), src)
	c.Status(http.StatusOK)
}

func (h *webhookHandler) countUpdate(outcome string) {
	if h.metrics != nil {
		h.metrics.UpdatesTotal.WithLabelValues(outcome).Inc()
	}
}
