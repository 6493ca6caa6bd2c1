package ws

import (
	"testing"
)

// === CLIENT TESTS ===

func TestNewClient(t *testing.T) {
	hub := NewHub()

	client := NewClient(hub, nil)

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if client.ID == "" {
		t.Error("Expected client to get a generated id")
	}
	if client.hub != hub {
		t.Error("Expected client.hub to be the same as input hub")
	}
	if client.send == nil {
		t.Error("Expected client.send channel to be initialized")
	}
	if client.state != stateUnjoined {
		t.Error("Expected new client to start unjoined")
	}
}

func TestNewClient_UniqueIDs(t *testing.T) {
	hub := NewHub()
	a := NewClient(hub, nil)
	b := NewClient(hub, nil)

	if a.ID == b.ID {
		t.Errorf("Expected distinct connection ids, both got %s", a.ID)
	}
}

func TestClient_Send(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil)

	msg := []byte("test message")
	client.Send(msg)

	select {
	case received := <-client.send:
		if string(received) != "test message" {
			t.Errorf("Expected 'test message', got %s", string(received))
		}
	default:
		t.Error("Expected message to be in send channel")
	}
}

func TestClient_SendBufferFull(t *testing.T) {
	hub := NewHub()

	client := &Client{
		ID:   "small-buffer",
		hub:  hub,
		send: make(chan []byte, 2),
	}

	client.Send([]byte("msg1"))
	client.Send([]byte("msg2"))

	// This should not block (buffer full handling)
	client.Send([]byte("msg3"))

	<-client.send
	<-client.send

	select {
	case <-client.send:
		t.Error("Expected no more messages (third should be dropped)")
	default:
		// Expected - buffer was full, msg3 dropped
	}
}
