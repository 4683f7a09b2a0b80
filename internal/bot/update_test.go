package bot_test

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doston9471/telegram-quote-bot/internal/bot"
)

func TestNormalizeTypedUpdate(t *testing.T) {
	t.Parallel()

	t.Run("text message", func(t *testing.T) {
		t.Parallel()
		src := bot.TypedUpdate{Update: &models.Update{
			Message: &models.Message{
				Chat: models.Chat{ID: 42},
				Text: "/random",
			},
		}}

		chatID, text, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("42"), chatID)
		assert.Equal(t, "/random", text)
	})

	t.Run("no message", func(t *testing.T) {
		t.Parallel()
		_, _, ok := bot.Normalize(bot.TypedUpdate{Update: &models.Update{}})
		assert.False(t, ok)
	})

	t.Run("non-text message", func(t *testing.T) {
		t.Parallel()
		src := bot.TypedUpdate{Update: &models.Update{
			Message: &models.Message{Chat: models.Chat{ID: 42}},
		}}
		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})

	t.Run("missing chat id", func(t *testing.T) {
		t.Parallel()
		src := bot.TypedUpdate{Update: &models.Update{
			Message: &models.Message{Text: "/start"},
		}}
		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})

	t.Run("nil update", func(t *testing.T) {
		t.Parallel()
		_, _, ok := bot.Normalize(bot.TypedUpdate{})
		assert.False(t, ok)
	})
}

func TestNormalizeMapUpdate(t *testing.T) {
	t.Parallel()

	t.Run("text message", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[string]any{
				"chat": map[string]any{"id": int64(42)},
				"text": "/categories",
			},
		}

		chatID, text, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("42"), chatID)
		assert.Equal(t, "/categories", text)
	})

	t.Run("string chat id passes through unmodified", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[string]any{
				"chat": map[string]any{"id": "@somechannel"},
				"text": "/random",
			},
		}

		chatID, _, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("@somechannel"), chatID)
	})

	t.Run("generic-keyed nested maps", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[any]any{
				"chat": map[any]any{"id": 7},
				"text": "/help",
			},
		}

		chatID, text, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("7"), chatID)
		assert.Equal(t, "/help", text)
	})

	t.Run("missing message", func(t *testing.T) {
		t.Parallel()
		_, _, ok := bot.Normalize(bot.MapUpdate{})
		assert.False(t, ok)
	})

	t.Run("message without text (sticker)", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[string]any{
				"chat":    map[string]any{"id": float64(42)},
				"sticker": map[string]any{"file_id": "abc"},
			},
		}
		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})

	t.Run("message without chat", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[string]any{"text": "/start"},
		}
		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})

	t.Run("chat without id", func(t *testing.T) {
		t.Parallel()
		src := bot.MapUpdate{
			"message": map[string]any{
				"chat": map[string]any{"type": "private"},
				"text": "/start",
			},
		}
		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})
}

func TestParseUpdate(t *testing.T) {
	t.Parallel()

	t.Run("telegram payload decodes as typed update", func(t *testing.T) {
		t.Parallel()
		body := []byte(`{"update_id":1,"message":{"message_id":10,"chat":{"id":42,"type":"private"},"text":"/random"}}`)

		src, err := bot.ParseUpdate(body)
		require.NoError(t, err)

		chatID, text, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("42"), chatID)
		assert.Equal(t, "/random", text)
	})

	t.Run("string chat id falls back to map adapter", func(t *testing.T) {
		t.Parallel()
		body := []byte(`{"message":{"chat":{"id":"@quotes"},"text":"/random"}}`)

		src, err := bot.ParseUpdate(body)
		require.NoError(t, err)

		chatID, text, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("@quotes"), chatID)
		assert.Equal(t, "/random", text)
	})

	t.Run("numeric chat id keeps integer formatting", func(t *testing.T) {
		t.Parallel()
		// Force the map path with a non-Telegram extra shape the typed
		// decoder rejects.
		body := []byte(`{"message":{"chat":{"id":9007199254740993,"type":["x"]},"text":"/start"}}`)

		src, err := bot.ParseUpdate(body)
		require.NoError(t, err)

		chatID, _, ok := bot.Normalize(src)
		require.True(t, ok)
		assert.Equal(t, bot.ChatID("9007199254740993"), chatID)
	})

	t.Run("empty object yields no message", func(t *testing.T) {
		t.Parallel()
		src, err := bot.ParseUpdate([]byte(`{}`))
		require.NoError(t, err)

		_, _, ok := bot.Normalize(src)
		assert.False(t, ok)
	})

	t.Run("malformed JSON errors", func(t *testing.T) {
		t.Parallel()
		_, err := bot.ParseUpdate([]byte(`{not json`))
		assert.Error(t, err)
	})
}
