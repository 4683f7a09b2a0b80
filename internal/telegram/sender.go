// Package telegram implements the outbound message sender over the Telegram
// Bot API, with a no-op mode for running without a credential.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbot "github.com/go-telegram/bot"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
)

// NewSender creates a Sender for the given bot token. An empty token returns
// a no-op sender, so the pipeline stays exercisable without a messaging
// credential (e.g. disconnected test mode).
func NewSender(token string, logger *slog.Logger) (bot.Sender, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_sender")

	if token == "" {
		log.Warn("No Telegram token configured, outbound delivery disabled")
		return &noopSender{log: log}, nil
	}

	b, err := tgbot.New(token, tgbot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot client: %w", err)
	}

	log.Info("Telegram sender initialized", "token_prefix", token[:min(8, len(token))]+"...")
	return &apiSender{client: b, log: log}, nil
}

// apiSender delivers messages through the Telegram Bot API.
type apiSender struct {
	client *tgbot.Bot
	log    *slog.Logger
}

// SendText implements bot.Sender.
func (s *apiSender) SendText(ctx context.Context, chatID bot.ChatID, text string) error {
	_, err := s.client.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: recipient(chatID),
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to chat %s: %w", chatID, err)
	}

	s.log.DebugContext(ctx, "Message delivered", "chat_id", string(chatID), "length", len(text))
	return nil
}

// recipient maps a chat identifier onto the API's polymorphic ChatID field:
// all-digit ids go as integers, anything else (channel usernames) as a string.
func recipient(chatID bot.ChatID) any {
	if id, err := strconv.ParseInt(string(chatID), 10, 64); err == nil {
		return id
	}
	return string(chatID)
}

// noopSender drops messages. Used when no credential is configured.
type noopSender struct {
	log *slog.Logger
}

// SendText implements bot.Sender.
func (s *noopSender) SendText(ctx context.Context, chatID bot.ChatID, text string) error {
	s.log.DebugContext(ctx, "Outbound delivery disabled, dropping message", "chat_id", string(chatID), "length", len(text))
	return nil
}
