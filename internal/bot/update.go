// Package bot implements the command-dispatch and reply-formatting engine:
// normalizing inbound updates, routing message text to commands, building
// replies from the quote store, and handing them to the outbound sender.
package bot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot/models"
)

// ChatID is an opaque destination handle for replies. It is carried through
// from the inbound update to the outbound sender unmodified.
type ChatID string

// MessageSource exposes the fields of an inbound message the pipeline needs.
type MessageSource interface {
	// ChatID returns the destination chat identifier, false if absent.
	ChatID() (ChatID, bool)
	// Text returns the message text, false for non-text messages.
	Text() (string, bool)
}

// UpdateSource abstracts over the concrete inbound payload shape, so the
// pipeline never branches on whether the webhook delivered a typed update or
// a loosely structured map.
type UpdateSource interface {
	// Message returns the contained message, false if the update has none.
	Message() (MessageSource, bool)
}

// Normalize extracts the chat identifier and message text from an update.
// It returns false for anything that should produce no reply: updates without
// a message, messages without a resolvable chat id, and non-text messages
// (stickers, photos). None of these are errors.
func Normalize(src UpdateSource) (ChatID, string, bool) {
	if src == nil {
		return "", "", false
	}
	msg, ok := src.Message()
	if !ok {
		return "", "", false
	}
	chatID, ok := msg.ChatID()
	if !ok {
		return "", "", false
	}
	text, ok := msg.Text()
	if !ok {
		return "", "", false
	}
	return chatID, text, true
}

// ParseUpdate decodes a webhook body into an UpdateSource. It attempts the
// typed Telegram update shape first and falls back to a generic map for
// payloads the typed decoder rejects (e.g. string chat ids).
func ParseUpdate(body []byte) (UpdateSource, error) {
	var update models.Update
	if err := json.Unmarshal(body, &update); err == nil {
		return TypedUpdate{Update: &update}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode update payload: %w", err)
	}
	return MapUpdate(raw), nil
}

// TypedUpdate adapts the Telegram update struct to UpdateSource.
type TypedUpdate struct {
	Update *models.Update
}

// Message implements UpdateSource.
func (u TypedUpdate) Message() (MessageSource, bool) {
	if u.Update == nil || u.Update.Message == nil {
		return nil, false
	}
	return typedMessage{u.Update.Message}, true
}

type typedMessage struct {
	msg *models.Message
}

func (m typedMessage) ChatID() (ChatID, bool) {
	if m.msg.Chat.ID == 0 {
		return "", false
	}
	return ChatID(strconv.FormatInt(m.msg.Chat.ID, 10)), true
}

func (m typedMessage) Text() (string, bool) {
	if m.msg.Text == "" {
		return "", false
	}
	return m.msg.Text, true
}

// MapUpdate adapts a loosely structured key/value payload to UpdateSource.
type MapUpdate map[string]any

// Message implements UpdateSource.
func (u MapUpdate) Message() (MessageSource, bool) {
	msg, ok := lookupMap(u, "message")
	if !ok {
		return nil, false
	}
	return mapMessage(msg), true
}

type mapMessage map[string]any

func (m mapMessage) ChatID() (ChatID, bool) {
	chat, ok := lookupMap(m, "chat")
	if !ok {
		return "", false
	}
	id, ok := chat["id"]
	if !ok || id == nil {
		return "", false
	}
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return ChatID(v), true
	case json.Number:
		return ChatID(v.String()), true
	case float64:
		return ChatID(strconv.FormatFloat(v, 'f', -1, 64)), true
	case int64:
		return ChatID(strconv.FormatInt(v, 10)), true
	case int:
		return ChatID(strconv.Itoa(v)), true
	default:
		return "", false
	}
}

func (m mapMessage) Text() (string, bool) {
	text, ok := m["text"].(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// lookupMap fetches a nested map value, tolerating both string-keyed and
// generic-keyed maps.
func lookupMap(m map[string]any, key string) (map[string]any, bool) {
	switch v := m[key].(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, value := range v {
			if ks, ok := k.(string); ok {
				converted[ks] = value
			}
		}
		return converted, true
	default:
		return nil, false
	}
}
