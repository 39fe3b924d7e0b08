package random

import (
	"crypto/rand"
)

// Random generates identifiers
type Random interface {
	// String returns length symbols drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String returns length symbols from the ASCII alphabet. Bytes that would
// bias the distribution are rejected and redrawn.
func (CryptoRandom) String(length int, alphabet string) string {
	n := len(alphabet)
	if length <= 0 || n == 0 || n > 256 {
		return ""
	}
	limit := 256 - 256%n

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		// crypto/rand.Read never returns an error on supported platforms
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
