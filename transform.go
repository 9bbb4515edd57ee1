package ntt

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-ntt/field"
	"github.com/jonathanmweiss/go-ntt/goldilocks"
	"github.com/jonathanmweiss/go-ntt/internal/cpu"
	"github.com/jonathanmweiss/go-ntt/sampling"
)

// Transform is the width-independent view of an Engine.
type Transform[E any] interface {
	N() int
	LogN() int
	Width() int
	Root() E
	Field() field.Field[E]

	Rand() []E
	RandFrom(s *sampling.Sampler) []E

	// Forward, Backward and Normalize mutate and return their argument.
	// They panic unless len(a) == N().
	Forward(a []E) []E
	Backward(a []E) []E
	Normalize(a []E) []E

	ForwardBatch(bufs ...[]E)
	BackwardBatch(bufs ...[]E)
	NormalizeBatch(bufs ...[]E)
}

var (
	_ Transform[uint64] = (*Engine[uint64, [1]uint64, goldilocks.Field, field.Lanes1[uint64, goldilocks.Field]])(nil)
	_ Transform[uint64] = (*Engine[uint64, [4]uint64, goldilocks.Field, field.Lanes4[uint64, goldilocks.Field]])(nil)
	_ Transform[uint64] = (*Engine[uint64, [8]uint64, goldilocks.Field, field.Lanes8[uint64, goldilocks.Field]])(nil)
)

var ErrUnsupportedWidth = errors.New("ntt: unsupported packing width")

// NewWithWidth builds a Transform over f with one of the built-in lane widths 1, 4 or 8.
func NewWithWidth[E any, F field.Field[E]](f F, n, width int) (Transform[E], error) {
	// each case returns a literal nil on failure, never a nil *Engine.
	switch width {
	case 1:
		e, err := NewScalar[E](f, n)
		if err != nil {
			return nil, err
		}

		return e, nil
	case 4:
		e, err := NewPacked4[E](f, n)
		if err != nil {
			return nil, err
		}

		return e, nil
	case 8:
		e, err := NewPacked8[E](f, n)
		if err != nil {
			return nil, err
		}

		return e, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
}

// NewGoldilocks builds a Transform over the Goldilocks field, packed to the width of
// the host's vector registers.
func NewGoldilocks(n int) (Transform[uint64], error) {
	return NewWithWidth[uint64](goldilocks.Field{}, n, cpu.LaneWidth())
}

// NewPrime builds a Transform over Z_q for a prime q < 2^63 with 2n | q-1.
func NewPrime(q uint64, n int) (Transform[uint64], error) {
	f, err := field.NewPrimeField(q)
	if err != nil {
		return nil, err
	}

	return NewWithWidth[uint64](f, n, cpu.LaneWidth())
}
