package domain

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"time"
)

// EventType identifies a frame on the wire, inbound or outbound
type EventType string

const (
	// Inbound (client -> server)
	EventTypeJoin    EventType = "join"    // payload: display name as a JSON string
	EventTypeMessage EventType = "message" // payload: ChatPayload (also the outbound chat event, payload: ChatMessage)

	// Outbound (server -> client)
	EventTypeUsers         EventType = "users"         // payload: ordered list of display names
	EventTypeSystemMessage EventType = "systemMessage" // payload: SystemNotification
)

// Envelope is the frame wrapper used in both directions
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ChatPayload is the inbound payload for chat messages.
// Unknown fields sent by clients are ignored.
type ChatPayload struct {
	Text string `json:"text"`
}

// ChatMessage is the outbound payload for an accepted chat message.
// User is a snapshot of the sender's name at send time, and Time is
// server-assigned (ms since epoch) so clients cannot spoof it.
type ChatMessage struct {
	ID   string `json:"id"`
	User string `json:"user"`
	Text string `json:"text"`
	Time int64  `json:"time"`
}

// SystemNotification announces a join or leave to all clients
type SystemNotification struct {
	Text string `json:"text"`
	Time int64  `json:"time"`
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewMessageID returns an id built from the current wall clock in
// milliseconds plus a short random base36 suffix, unique enough to
// survive concurrent sends within the same millisecond.
func NewMessageID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}

// NewEnvelope marshals an outbound event into ready-to-send frame bytes
func NewEnvelope(eventType EventType, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Payload: raw})
}
