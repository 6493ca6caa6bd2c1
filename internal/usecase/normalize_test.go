package usecase

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal name", "Bob", "Bob"},
		{"Trim whitespace", "  Bob  ", "Bob"},
		{"Empty defaults", "", "Anonymous"},
		{"Whitespace only defaults", "   \t ", "Anonymous"},
		{"Exactly 40 chars kept", strings.Repeat("a", 40), strings.Repeat("a", 40)},
		{"Overlong truncated to 40", strings.Repeat("a", 60), strings.Repeat("a", 40)},
		{"Multibyte truncated by runes", strings.Repeat("é", 50), strings.Repeat("é", 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeDisplayName(tc.input)
			if result != tc.expected {
				t.Errorf("NormalizeDisplayName(%q) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNormalizeMessageText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Normal text", "hello", "hello", true},
		{"Surrounding whitespace kept", "  hi  ", "  hi  ", true},
		{"Empty dropped", "", "", false},
		{"Whitespace only dropped", " \t\n ", "", false},
		{"Overlong truncated to 1000", strings.Repeat("x", 1500), strings.Repeat("x", 1000), true},
		{"Exactly 1000 kept", strings.Repeat("x", 1000), strings.Repeat("x", 1000), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := NormalizeMessageText(tc.input)
			if ok != tc.ok {
				t.Fatalf("NormalizeMessageText(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			}
			if result != tc.expected {
				t.Errorf("NormalizeMessageText(%q) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestComposeChatMessage(t *testing.T) {
	before := time.Now().UnixMilli()
	msg := ComposeChatMessage("Alice", "hi")
	after := time.Now().UnixMilli()

	if msg.User != "Alice" {
		t.Errorf("Expected user Alice, got %s", msg.User)
	}
	if msg.Text != "hi" {
		t.Errorf("Expected text hi, got %s", msg.Text)
	}
	if msg.Time < before || msg.Time > after {
		t.Errorf("Timestamp %d outside [%d, %d]", msg.Time, before, after)
	}
	if msg.ID == "" {
		t.Error("Expected non-empty message id")
	}
}

func TestComposeChatMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := ComposeChatMessage("Alice", "hi")
		if seen[msg.ID] {
			t.Fatalf("Duplicate message id %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestComposeSystemNotification(t *testing.T) {
	n := ComposeSystemNotification("Alice joined the chat")
	if n.Text != "Alice joined the chat" {
		t.Errorf("Unexpected text: %s", n.Text)
	}
	if n.Time == 0 {
		t.Error("Expected server-assigned timestamp")
	}
}
