package session

import (
	"sync"

	"codesync/internal/models"
)

// Hub is the transport-level group bookkeeping: which connections currently
// belong to which rooms. Membership lives here and nowhere else; callers that
// need it always ask the hub rather than keeping their own copy.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	joined map[*Client]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		joined: make(map[*Client]map[string]struct{}),
	}
}

// Join adds the client to the room group. Joining a room twice is a no-op.
func (h *Hub) Join(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]struct{})
	}
	h.rooms[roomID][c] = struct{}{}
	if _, ok := h.joined[c]; !ok {
		h.joined[c] = make(map[string]struct{})
	}
	h.joined[c][roomID] = struct{}{}
}

// Members returns the clients currently in the room, in no particular order.
func (h *Hub) Members(roomID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	group := h.rooms[roomID]
	out := make([]*Client, 0, len(group))
	for c := range group {
		out = append(out, c)
	}
	return out
}

// RoomsOf returns the rooms the client currently belongs to.
func (h *Hub) RoomsOf(c *Client) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.joined[c]))
	for roomID := range h.joined[c] {
		out = append(out, roomID)
	}
	return out
}

// LeaveAll removes the client from every group it joined, deleting groups
// left empty, and returns the rooms it belonged to.
func (h *Hub) LeaveAll(c *Client) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.joined[c]))
	for roomID := range h.joined[c] {
		out = append(out, roomID)
		if group, ok := h.rooms[roomID]; ok {
			delete(group, c)
			if len(group) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	delete(h.joined, c)
	return out
}

// BroadcastAll sends the frame to every member of the room.
func (h *Hub) BroadcastAll(roomID string, frame models.WSFrame) {
	h.Broadcast(roomID, nil, frame)
}

// Broadcast sends the frame to every member of the room except sender. A nil
// sender reaches everyone; an unknown room reaches no one.
func (h *Hub) Broadcast(roomID string, sender *Client, frame models.WSFrame) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[roomID]))
	for c := range h.rooms[roomID] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		if c == sender {
			continue
		}
		c.Send(frame)
	}
}
