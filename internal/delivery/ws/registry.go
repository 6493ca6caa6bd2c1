package ws

import "sync"

// Registry is the authoritative mapping from connection id to display name.
// It contains exactly the connections that have joined and not yet
// disconnected, in join order. Every operation that mutates and reads runs
// inside a single critical section so the returned participant list always
// reflects a registry state that actually existed.
type Registry struct {
	mu    sync.RWMutex
	names map[string]string
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]string),
	}
}

// Register upserts the display name for a connection and returns the
// participant list after the mutation. Re-registering an existing
// connection overwrites its name but keeps its position in the list.
func (r *Registry) Register(id, name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[id]; !exists {
		r.order = append(r.order, id)
	}
	r.names[id] = name

	return r.snapshotLocked()
}

// Unregister removes a connection if present and returns the participant
// list after the mutation. The bool is false when the connection had no
// entry, which tells the caller to suppress the leave notification.
func (r *Registry) Unregister(id string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[id]; !exists {
		return nil, false
	}
	delete(r.names, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return r.snapshotLocked(), true
}

// Lookup resolves the display name for a connection
func (r *Registry) Lookup(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[id]
	return name, ok
}

// Snapshot returns the current participant list in join order
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Len returns the number of joined connections
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// snapshotLocked builds the participant list. Caller must hold at least RLock.
func (r *Registry) snapshotLocked() []string {
	list := make([]string, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.names[id])
	}
	return list
}
