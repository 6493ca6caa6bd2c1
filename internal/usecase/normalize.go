package usecase

import (
	"strings"
	"time"

	"github.com/banterhq/banter/internal/domain"
)

// NormalizeDisplayName trims surrounding whitespace, clamps the name to
// domain.MaxDisplayNameLength runes, and falls back to the anonymous name
// when nothing is left. Never rejects input.
func NormalizeDisplayName(raw string) string {
	name := strings.TrimSpace(raw)
	if runes := []rune(name); len(runes) > domain.MaxDisplayNameLength {
		name = string(runes[:domain.MaxDisplayNameLength])
	}
	if name == "" {
		return domain.AnonymousName
	}
	return name
}

// NormalizeMessageText clamps chat text to domain.MaxMessageTextLength runes.
// The returned bool is false when the trimmed result is empty, which means
// the caller must drop the message entirely. The text itself is returned
// untrimmed: clients may send meaningful leading/trailing whitespace.
func NormalizeMessageText(raw string) (string, bool) {
	text := raw
	if runes := []rune(text); len(runes) > domain.MaxMessageTextLength {
		text = string(runes[:domain.MaxMessageTextLength])
	}
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// ComposeChatMessage builds the outbound chat message for an accepted send.
// The id and timestamp are assigned here, once, so every recipient sees the
// same values regardless of delivery timing.
func ComposeChatMessage(user, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:   domain.NewMessageID(),
		User: user,
		Text: text,
		Time: time.Now().UnixMilli(),
	}
}

// ComposeSystemNotification builds a join/leave announcement
func ComposeSystemNotification(text string) domain.SystemNotification {
	return domain.SystemNotification{
		Text: text,
		Time: time.Now().UnixMilli(),
	}
}
