/*
Package chat contains the core logic of the chat service.

This file implements the access decision for a room: given an auth key (possibly
absent or unregistered) and a supplied passphrase (possibly wrong or absent),
produce one of three outcomes. The rules are evaluated in a fixed order and the
first match wins; the ordering is part of the contract, not an optimization.
Every outcome is an ordinary value. Bad input never panics.
*/
package chat

// Outcome is the result of an access decision. The string values are the
// exact tokens clients receive in the authentication response.
type Outcome string

const (
	// Success: the caller is (now) an authorized member of the room.
	Success Outcome = "success"

	// Pending: the supplied passphrase is right but the caller holds no
	// registered auth key. The caller should register and retry; membership
	// is not changed.
	Pending Outcome = "pending"

	// Fail: no access. Covers unknown rooms and wrong passphrases alike, so
	// a caller without the secret learns nothing about why.
	Fail Outcome = "fail"
)

// Authenticate decides whether the holder of token may access the room with the
// given id, using suppliedSecret as proof when the token alone is not enough.
//
// The rules, in order:
//  1. Unknown room id: Fail.
//  2. Token already an authorized member: Success. The passphrase is not
//     re-checked, so members are never locked out by a stale or garbled secret.
//  3. Unregistered token with the correct passphrase: Pending, no mutation.
//  4. Registered token with the correct passphrase: Success, and the token is
//     added to the room's members atomically under the room lock.
//  5. Anything else: Fail.
func (s *Store) Authenticate(roomID int, token string, suppliedSecret string) Outcome {
	room := s.Get(roomID)
	if room == nil {
		return Fail
	}

	if room.IsMember(token) {
		return Success
	}

	secretValid := suppliedSecret == room.Passphrase()

	if !s.registry.IsValid(token) {
		if secretValid {
			return Pending
		}
		return Fail
	}

	if secretValid {
		room.addMember(token)
		return Success
	}

	return Fail
}
