/*
Package chat contains the core logic of the chat service: the credential registry,
the room store, the bounded per-room message history, and the access decision
that turns an auth key plus an optional shared passphrase into room membership.

This file defines the Registry struct, which maps opaque auth keys to display names.
Registration is the only way an auth key comes into existence; entries are never
updated or deleted for the lifetime of the process.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/logx"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/randx"
)

// Registry maps opaque auth keys to the display name chosen at registration.
type Registry struct {
	// users stores the auth key → display name mapping.
	users map[string]string

	// mu protects concurrent access to the users map.
	mu sync.RWMutex

	// structured logger with Registry context.
	logger zerolog.Logger
}

// NewRegistry constructs and returns an empty Registry.
func NewRegistry() *Registry {
	registryLogger := logx.Logger().With().Str("component", "Registry").Logger()

	return &Registry{
		users:  make(map[string]string),
		logger: registryLogger,
	}
}

// Register issues a fresh auth key for the given display name and stores the mapping.
// It always succeeds; display names are not required to be unique. A later registration
// with the same name yields a distinct key, and renames never rewrite existing entries.
func (reg *Registry) Register(displayName string) string {
	key := randx.AuthKey()

	reg.mu.Lock()
	reg.users[key] = displayName
	reg.mu.Unlock()

	reg.logger.Info().Str("display_name", displayName).Msg("New user registered.")

	return key
}

// Resolve looks up the display name for the given auth key.
// The boolean result reports whether the key is registered.
func (reg *Registry) Resolve(token string) (string, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	name, ok := reg.users[token]
	return name, ok
}

// IsValid reports whether the given auth key identifies a registered user.
// The empty string and the client-side "null" sentinel are never valid.
func (reg *Registry) IsValid(token string) bool {
	if token == "" || token == randx.NoAuthKey {
		return false
	}

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	_, ok := reg.users[token]
	return ok
}
