package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/delivery/ws"
)

// isOriginAllowed checks if the origin is in the allowed list
func isOriginAllowed(origin string) bool {
	// Empty origin is allowed (same-origin requests)
	if origin == "" {
		return true
	}

	for _, allowed := range config.AppConfig.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return isOriginAllowed(origin)
	},
}

// Handler serves the chat page, the participants API, and websocket upgrades
type Handler struct {
	hub *ws.Hub
}

// NewHandler creates a Handler backed by the given hub
func NewHandler(hub *ws.Hub) *Handler {
	return &Handler{hub: hub}
}

// HandleIndex serves the single-page chat client
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	http.ServeFile(w, r, "./static/index.html")
}

// HandleParticipants returns the current participant list as JSON
func (h *Handler) HandleParticipants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list := h.hub.Participants()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"participants": list,
		"count":        len(list),
	})
}

// HandleWebSocket upgrades HTTP to WebSocket and starts the connection pumps
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)
	log.Printf("connected: %s", client.ID)

	go client.WritePump()
	go client.ReadPump()
}
