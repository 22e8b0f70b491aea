// Package random provides the cryptographically-suitable uniform source
// used by all secret generation.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source yields uniform random integers. Implementations are not
// required to be safe for concurrent use; batch workers hold one
// private Source each.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. Intn uses rejection sampling so
// the result carries no modulo bias.
type CryptoSource struct {
	buf [8]byte
}

// NewCrypto returns a fresh CryptoSource.
func NewCrypto() *CryptoSource {
	return &CryptoSource{}
}

func (s *CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: Intn bound must be positive, got %d", n)
	}

	bound := uint64(n)
	// Largest multiple of bound representable in a uint64; draws at or
	// above it are rejected to keep the distribution uniform.
	limit := (^uint64(0) / bound) * bound
	for {
		if _, err := io.ReadFull(rand.Reader, s.buf[:]); err != nil {
			return 0, fmt.Errorf("random: reading entropy: %w", err)
		}
		v := binary.BigEndian.Uint64(s.buf[:])
		if v < limit {
			return int(v % bound), nil
		}
	}
}
