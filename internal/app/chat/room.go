/*
Package chat contains the core logic of the chat service.

This file defines the Room struct, the unit of state for a single chat room:
its dense numeric id, the fixed shared passphrase used for invite links, the
grow-only set of authorized auth keys, and the bounded message history. All
mutable room state is guarded by a per-room mutex, so concurrent posts and
joins against the same room serialize here and nowhere else.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/logx"
)

// Room represents a single chat room and its process-lifetime state.
type Room struct {
	// ID is the room's dense, creation-ordered identifier.
	ID int

	// passphrase is the room's shared secret, fixed at creation.
	passphrase string

	// members is the set of authorized auth keys. It only ever grows.
	members map[string]struct{}

	// messages is the bounded history of the room.
	messages MessageBuffer

	// mu guards members and messages.
	mu sync.Mutex

	// structured logger with room context.
	logger zerolog.Logger
}

// newRoom creates a Room with the given id and passphrase, authorizing only the creator.
func newRoom(id int, passphrase string, creatorToken string) *Room {
	roomLogger := logx.Logger().With().Int("chat_id", id).Logger()

	return &Room{
		ID:         id,
		passphrase: passphrase,
		members:    map[string]struct{}{creatorToken: {}},
		logger:     roomLogger,
	}
}

// Passphrase returns the room's shared secret. It never changes after creation.
func (r *Room) Passphrase() string {
	return r.passphrase
}

// IsMember reports whether the given auth key is authorized for this room.
func (r *Room) IsMember(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[token]
	return ok
}

// addMember inserts the auth key into the authorized set. The insert is idempotent
// and happens atomically under the room lock, so two concurrent joins with the
// correct passphrase both end up members.
func (r *Room) addMember(token string) {
	r.mu.Lock()
	_, already := r.members[token]
	r.members[token] = struct{}{}
	memberCount := len(r.members)
	r.mu.Unlock()

	if !already {
		r.logger.Info().Int("member_count", memberCount).Msg("User joined room.")
	}
}

// MemberCount returns the number of authorized auth keys.
func (r *Room) MemberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.members)
}

// Post appends a message to the room's history, evicting the oldest entry
// once the history is full.
func (r *Room) Post(msg Message) {
	r.mu.Lock()
	r.messages.Append(msg)
	r.mu.Unlock()
}

// Messages returns a consistent snapshot of the room's history, oldest first.
func (r *Room) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.messages.Snapshot()
}
