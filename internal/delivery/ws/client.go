package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// Client represents a single websocket connection
type Client struct {
	ID    string
	state connState
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
}

// NewClient creates a new Client with a generated connection id
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.New().String(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// ReadPump pumps frames from the websocket connection into the hub.
// When the read loop ends, for any reason, the connection is reported to
// the hub exactly once via the unregister path.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(int64(config.AppConfig.MaxFrameSize))
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			// Close reason is informational only; the disconnect
			// transition is the same for every cause
			break
		}

		var incoming domain.Envelope
		if err := json.Unmarshal(message, &incoming); err != nil {
			continue
		}

		c.hub.Dispatch(c, incoming.Type, incoming.Payload)
	}
}

// WritePump pumps frames from the hub to the websocket connection and
// keeps the connection alive with periodic pings. Queued frames are
// batched into one websocket message, separated by newlines.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Send adds a frame to the client's send queue, dropping it if full
func (c *Client) Send(msg []byte) {
	select {
	case c.send <- msg:
	default:
		// Buffer full
	}
}
