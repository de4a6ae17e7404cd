/*
Package chat contains the core logic of the chat service.

This file defines the Store struct, which owns every Room in the process.
Room ids are dense and creation-ordered: the id of a new room equals the
number of rooms created before it, so the store keeps rooms in a slice and
lookup is a bounds check. Rooms are never deleted.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/logx"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/randx"
)

// Store is responsible for creating, tracking, and retrieving all rooms.
type Store struct {
	// rooms holds every room ever created, indexed by id.
	rooms []*Room

	// registry resolves and validates auth keys for access decisions.
	registry *Registry

	// mu protects concurrent access to the rooms slice.
	mu sync.RWMutex

	// structured logger with Store context.
	logger zerolog.Logger
}

// NewStore constructs a Store backed by the given credential registry.
func NewStore(registry *Registry) *Store {
	storeLogger := logx.Logger().With().Str("component", "Store").Logger()

	return &Store{
		rooms:    make([]*Room, 0),
		registry: registry,
		logger:   storeLogger,
	}
}

// CreateRoom creates a new room whose only authorized member is the creator.
// The caller must have validated the creator's auth key beforehand; creation
// bypasses the access decision because the creator is trivially authorized.
// It returns the new room and any error from passphrase generation.
func (s *Store) CreateRoom(creatorToken string) (*Room, error) {
	passphrase, err := randx.Passphrase()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	id := len(s.rooms)
	room := newRoom(id, passphrase, creatorToken)
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()

	s.logger.Info().Int("chat_id", id).Msg("New room created.")

	return room, nil
}

// Get retrieves a room by id. It returns nil when the id does not name an existing room.
func (s *Store) Get(id int) *Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 0 || id >= len(s.rooms) {
		return nil
	}
	return s.rooms[id]
}

// Len returns the number of rooms created so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rooms)
}
