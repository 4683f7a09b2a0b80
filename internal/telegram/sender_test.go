package telegram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
)

func TestNewSenderWithoutToken(t *testing.T) {
	sender, err := NewSender("", nil)
	require.NoError(t, err)
	require.NotNil(t, sender)

	// The no-op sender accepts any destination and never fails.
	assert.NoError(t, sender.SendText(context.Background(), "42", "hello"))
	assert.NoError(t, sender.SendText(context.Background(), "@somechannel", "hello"))
}

func TestChatIDConversion(t *testing.T) {
	tests := []struct {
		chatID  string
		want    any
		numeric bool
	}{
		{"42", int64(42), true},
		{"-1001234567890", int64(-1001234567890), true},
		{"@somechannel", "@somechannel", false},
		{"abc123", "abc123", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got := recipient(bot.ChatID(tt.chatID))
		assert.Equal(t, tt.want, got, "chat id %q", tt.chatID)
		_, isInt := got.(int64)
		assert.Equal(t, tt.numeric, isInt, "chat id %q", tt.chatID)
	}
}
