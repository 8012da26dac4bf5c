package session

import "sync"

// Registry maps connection IDs to the display name chosen at join time.
type Registry struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewRegistry() *Registry { return &Registry{names: make(map[string]string)} }

// Bind records or overwrites the display name for a connection.
func (r *Registry) Bind(connID, username string) {
	r.mu.Lock()
	r.names[connID] = username
	r.mu.Unlock()
}

func (r *Registry) Lookup(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[connID]
	return name, ok
}

// Unbind removes the mapping. Unbinding an unknown connection is a no-op.
func (r *Registry) Unbind(connID string) {
	r.mu.Lock()
	delete(r.names, connID)
	r.mu.Unlock()
}
