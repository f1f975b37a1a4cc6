// Package gameid generates identifiers for games and simulation runs.
package gameid

import (
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"

	"github.com/google/uuid"
)

// Generate creates a new time ordered game ID (UUIDv7)
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the system entropy source does
		return uuid.NewString()
	}
	return id.String()
}

// FromSeed derives a random (v4) game ID from a seed, so that seeded games and
// simulations carry reproducible identifiers.
func FromSeed(seed int64) string {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	id, err := uuid.NewRandomFromReader(rand.NewChaCha8(key))
	if err != nil {
		return Generate()
	}
	return id.String()
}

// Short returns the first block of a game ID for compact log prefixes
func Short(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}

// Validate checks that a game ID is a well formed UUID
func Validate(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	return nil
}
