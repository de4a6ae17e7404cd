/*
Package randx provides functions for generating cryptographically secure random identifiers.

It is used to generate opaque auth keys for registered users and the fixed-length
shared passphrases that act as room invite secrets.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// PassphraseChars defines the character set used for shared passphrases (a-z, 0-9).
	PassphraseChars = "abcdefghijklmnopqrstuvwxyz0123456789"

	// PassphraseCharsLen is the total number of characters in the passphrase character set (36).
	PassphraseCharsLen = int64(len(PassphraseChars))

	// PassphraseLength is the fixed length of a room's shared passphrase.
	PassphraseLength = 40

	// NoAuthKey is the sentinel value browsers send when no auth key is stored client-side.
	NoAuthKey = "null"
)

// AuthKey generates a fresh opaque auth key for a newly registered user.
// The key is a UUID rendered without dashes, matching the compact hex form
// clients store in local storage.
func AuthKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Passphrase generates a room's shared passphrase using a cryptographically secure
// random number generator (crypto/rand). It returns a string of length PassphraseLength
// drawn uniformly from PassphraseChars, and any error encountered.
func Passphrase() (string, error) {
	result := make([]byte, PassphraseLength)

	for i := 0; i < PassphraseLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(PassphraseCharsLen))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for passphrase: %v", err)
		}

		result[i] = PassphraseChars[num.Int64()]
	}

	return string(result), nil
}

// IsWellFormedPassphrase checks if the given string could be a valid shared passphrase.
// Validity criteria: length equals PassphraseLength and all characters belong to PassphraseChars.
// A well-formed passphrase is not necessarily the right one for any room.
func IsWellFormedPassphrase(secret string) bool {
	if len(secret) != PassphraseLength {
		return false
	}

	for _, char := range secret {
		if !strings.ContainsRune(PassphraseChars, char) {
			return false
		}
	}

	return true
}
