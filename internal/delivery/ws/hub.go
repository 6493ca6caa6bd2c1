package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/banterhq/banter/internal/domain"
)

// inboundEvent carries one parsed client frame into the hub loop
type inboundEvent struct {
	client    *Client
	eventType domain.EventType
	payload   json.RawMessage
}

// Hub maintains the set of open connections and fans events out to them.
// All connection state and registry mutation happens inside the Run loop,
// so transitions from different connections never interleave mid-step.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	registry *Registry

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundEvent

	done     chan struct{}
	stopOnce sync.Once
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		registry:   NewRegistry(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

			// Initial-state push: the new connection alone gets the
			// current participant list, before any join of its own.
			if data, err := domain.NewEnvelope(domain.EventTypeUsers, h.registry.Snapshot()); err == nil {
				client.Send(data)
			}

		case client := <-h.unregister:
			h.handleDisconnect(client)

		case ev := <-h.inbound:
			h.route(ev)

		case <-h.done:
			h.teardown()
			return
		}
	}
}

// Shutdown stops the Run loop and closes every connection's send queue.
// Safe to call more than once.
func (h *Hub) Shutdown() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

// fanOut delivers a frame to every open connection. Delivery is
// best-effort: a connection whose send queue is full is torn down after
// the loop, without blocking delivery to anyone else.
func (h *Hub) fanOut(data []byte) {
	var stalled []*Client

	h.mu.RLock()
	for _, client := range h.clients {
		select {
		case client.send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		log.Printf("dropping slow client %s: send queue full", client.ID)
		h.handleDisconnect(client)
	}
}

// broadcastUsers fans out the participant list to all connections
func (h *Hub) broadcastUsers(list []string) {
	data, err := domain.NewEnvelope(domain.EventTypeUsers, list)
	if err != nil {
		log.Printf("encode users event: %v", err)
		return
	}
	h.fanOut(data)
}

// broadcastSystem fans out a join/leave announcement
func (h *Hub) broadcastSystem(notification domain.SystemNotification) {
	data, err := domain.NewEnvelope(domain.EventTypeSystemMessage, notification)
	if err != nil {
		log.Printf("encode system event: %v", err)
		return
	}
	h.fanOut(data)
}

// teardown closes every remaining connection at shutdown
func (h *Hub) teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		client.state = stateClosed
		close(client.send)
		delete(h.clients, id)
		h.registry.Unregister(id)
	}
}
