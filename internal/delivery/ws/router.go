package ws

import (
	"encoding/json"
	"log"

	"github.com/banterhq/banter/internal/domain"
	"github.com/banterhq/banter/internal/usecase"
)

// connState is the lifecycle state of a single connection
type connState int

const (
	stateUnjoined connState = iota
	stateJoined
	stateClosed
)

// route dispatches one inbound event through the per-connection state
// machine. Runs only on the hub loop goroutine, which is the sole writer
// of client state and the registry.
func (h *Hub) route(ev inboundEvent) {
	if ev.client.state == stateClosed {
		return
	}

	switch ev.eventType {
	case domain.EventTypeJoin:
		h.handleJoin(ev.client, ev.payload)
	case domain.EventTypeMessage:
		h.handleChat(ev.client, ev.payload)
	default:
		// Unknown event types are ignored, not answered with errors
	}
}

// handleJoin registers (or re-registers) the connection's display name and
// announces the updated participant list. Valid from both Unjoined and
// Joined: a transport-level reconnect re-announcing the same name simply
// re-runs the transition.
func (h *Hub) handleJoin(c *Client, payload json.RawMessage) {
	var raw string
	// Malformed payloads normalize like empty names rather than erroring
	_ = json.Unmarshal(payload, &raw)

	name := usecase.NormalizeDisplayName(raw)
	list := h.registry.Register(c.ID, name)
	c.state = stateJoined

	h.broadcastUsers(list)
	h.broadcastSystem(usecase.ComposeSystemNotification(name + " joined the chat"))
}

// handleChat validates, stamps, and fans out a chat message. A connection
// that never joined still gets its message through, attributed to the
// anonymous name: sending before joining is tolerated, not rejected.
func (h *Hub) handleChat(c *Client, payload json.RawMessage) {
	var p domain.ChatPayload
	_ = json.Unmarshal(payload, &p)

	text, ok := usecase.NormalizeMessageText(p.Text)
	if !ok {
		// Empty after clamping: drop silently, no broadcast
		return
	}

	user, registered := h.registry.Lookup(c.ID)
	if !registered {
		user = domain.AnonymousName
	}

	msg := usecase.ComposeChatMessage(user, text)
	data, err := domain.NewEnvelope(domain.EventTypeMessage, msg)
	if err != nil {
		log.Printf("encode chat message: %v", err)
		return
	}
	h.fanOut(data)
}

// handleDisconnect runs the terminal transition for a connection. The
// clients-map membership check makes it idempotent: read errors, write
// errors, and slow-consumer teardown may all report the same closure, but
// unregistration and the leave broadcast run at most once.
func (h *Hub) handleDisconnect(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.ID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.ID)
	h.mu.Unlock()

	c.state = stateClosed
	close(c.send)

	name, joined := h.registry.Lookup(c.ID)
	list, ok := h.registry.Unregister(c.ID)
	if !joined || !ok {
		// Never joined: remove silently, no leave notification
		return
	}

	h.broadcastUsers(list)
	h.broadcastSystem(usecase.ComposeSystemNotification(name + " left the chat"))
}
