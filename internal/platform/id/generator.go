package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idBytes is the entropy per generated id; hex-encoded the result is 32 chars.
const idBytes = 16

// Generator creates opaque IDs suitable for external references, such as
// builder-session ids handed to clients.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator is the production Generator. Tests substitute a static one.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	raw := make([]byte, idBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
