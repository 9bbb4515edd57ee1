// Package sampling draws uniformly distributed field elements from a SHAKE-128 stream.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/jonathanmweiss/go-ntt/field"
	"golang.org/x/crypto/sha3"
)

// SeedSize is the number of bytes NewRandomSampler reads from crypto/rand.
const SeedSize = 32

// Sampler is a deterministic byte stream: equal seeds yield equal samples.
// It is not safe for concurrent use.
type Sampler struct {
	h   sha3.ShakeHash
	buf [8]byte
}

// NewSampler absorbs seed into a fresh SHAKE-128 state.
func NewSampler(seed []byte) *Sampler {
	h := sha3.NewShake128()
	h.Write(seed)

	return &Sampler{h: h}
}

// NewRandomSampler seeds a Sampler from the operating system's randomness.
func NewRandomSampler() (*Sampler, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("sampling: read seed: %w", err)
	}

	return NewSampler(seed), nil
}

// Uint64 returns the next 8 bytes of the stream as a little-endian word.
func (s *Sampler) Uint64() uint64 {
	s.h.Read(s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Reset reinitializes the stream for a new seed.
func (s *Sampler) Reset(seed []byte) {
	s.h.Reset()
	s.h.Write(seed)
}

// Uniform returns n independent uniform elements of f.
// Words are masked to the bit length of the modulus and rejected when out of range,
// so every element is accepted with probability above one half.
func Uniform[E any](s *Sampler, f field.Field[E], n int) []E {
	q := f.Modulus()
	// a shift by 64 yields 0, so the mask wraps to all ones for 64-bit moduli.
	mask := uint64(1)<<bits.Len64(q-1) - 1

	out := make([]E, n)
	for i := 0; i < n; {
		v := s.Uint64() & mask
		if v < q {
			out[i] = f.FromUint64(v)
			i++
		}
	}

	return out
}
