package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// CryptoSource draws floats from crypto/rand. Each value is built from the
// top 53 bits of a random uint64, giving a uniform float in [0,1).
type CryptoSource struct{}

// NewCryptoSource returns a Source backed by the operating system's CSPRNG.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// Draw returns exactly n random floats in [0,1).
func (CryptoSource) Draw(n int) ([]float64, error) {
	if n <= 0 {
		n = 1
	}
	buf := make([]byte, 8*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	values := make([]float64, n)
	for i := range values {
		u := binary.LittleEndian.Uint64(buf[8*i:])
		values[i] = float64(u>>11) / (1 << 53)
	}
	return values, nil
}

// FixedSource replays a predetermined sequence of floats, cycling when the
// sequence is exhausted. It exists for tests and for reproducing known
// passwords from recorded draws.
type FixedSource struct {
	values []float64
	pos    int
}

// NewFixedSource returns a Source that cycles through values in order.
func NewFixedSource(values ...float64) *FixedSource {
	return &FixedSource{values: values}
}

// Draw returns the next n values from the sequence.
func (s *FixedSource) Draw(n int) ([]float64, error) {
	if len(s.values) == 0 {
		return nil, ErrNoValues
	}
	if n <= 0 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.values[s.pos%len(s.values)]
		s.pos++
	}
	return out, nil
}
