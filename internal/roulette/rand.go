package roulette

import (
	"crypto/rand"
	"io"
	"log/slog"
	"math/big"
)

// Rand is the random source used by a Selector.
type Rand interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// SafeRand draws from crypto/rand.
type SafeRand struct {
	reader io.Reader
}

// NewSafeRand returns a crypto-backed random source.
func NewSafeRand() *SafeRand {
	return &SafeRand{reader: rand.Reader}
}

// Intn returns a uniform value in [0, n), or 0 when n <= 0 or the system
// source fails.
func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	reader := s.reader
	if reader == nil {
		reader = rand.Reader
	}
	value, err := rand.Int(reader, big.NewInt(int64(n)))
	if err != nil {
		slog.Warn("crypto random source failed, using first candidate", "n", n, "error", err)
		return 0
	}
	return int(value.Int64())
}
