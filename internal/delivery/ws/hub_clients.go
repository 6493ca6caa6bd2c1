package ws

import (
	"encoding/json"

	"github.com/banterhq/banter/internal/domain"
)

// Register adds a newly-opened connection to the hub. No-op after Shutdown.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister reports a closed connection to the hub. No-op after Shutdown.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Dispatch queues one inbound client event for the hub loop. Events from
// a single connection are processed strictly in arrival order.
func (h *Hub) Dispatch(c *Client, eventType domain.EventType, payload json.RawMessage) {
	select {
	case h.inbound <- inboundEvent{client: c, eventType: eventType, payload: payload}:
	case <-h.done:
	}
}

// ClientCount returns the number of open connections
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Participants returns the current participant list in join order
func (h *Hub) Participants() []string {
	return h.registry.Snapshot()
}
