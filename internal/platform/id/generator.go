package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultSize = 8

// Generator creates opaque IDs used to correlate requests across logs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	prefix string
	size   int
}

// NewRandomGenerator returns IDs of the form prefix + 16 hex characters.
func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix, size: defaultSize}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return g.prefix + hex.EncodeToString(buf), nil
}
