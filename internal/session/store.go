package session

import (
	"sync"

	"codesync/internal/models"
)

// Store keeps the latest known document per room. Rooms come into being on
// first write and are never deleted; whichever write lands last wins.
type Store struct {
	mu    sync.Mutex
	rooms map[string]models.RoomState
}

func NewStore() *Store { return &Store{rooms: make(map[string]models.RoomState)} }

func (s *Store) State(roomID string) (models.RoomState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.rooms[roomID]
	return state, ok
}

// MergeCode sets the room's code, leaving the language untouched.
func (s *Store) MergeCode(roomID, code string) {
	s.mu.Lock()
	state := s.rooms[roomID]
	state.Code = code
	s.rooms[roomID] = state
	s.mu.Unlock()
}

// MergeLanguage sets the room's language, leaving the code untouched.
func (s *Store) MergeLanguage(roomID, language string) {
	s.mu.Lock()
	state := s.rooms[roomID]
	state.Language = language
	s.rooms[roomID] = state
	s.mu.Unlock()
}
