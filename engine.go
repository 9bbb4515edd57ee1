package ntt

import (
	"fmt"
	"math/bits"

	"github.com/jonathanmweiss/go-ntt/field"
	"github.com/jonathanmweiss/go-ntt/sampling"
)

var ErrNotPowerOfTwo = field.ErrNotPowerOfTwo

// Engine computes length-n NTTs over the field F, running the coarse layers of the
// butterfly network on packed groups of K.Width() elements and the remaining
// layers element by element.
//
// Forward maps coefficients to evaluations on the coset psi*<psi^2>, where psi is a
// primitive 2n-th root of unity, and leaves them in bit-reversed order. Backward
// undoes it up to a factor n, removed by Normalize.
//
// An Engine is immutable once built and may be shared by goroutines working on
// distinct buffers.
type Engine[E, P any, F field.Field[E], K field.Packing[E, P]] struct {
	field   F
	packing K

	n          int
	logN       int
	logNPacked int
	width      int

	root        E
	twiddles    []E // psi^brv(i)
	twiddleInvs []E // psi^-brv(i)
	nInv        E
}

// New precomputes the twiddle tables for size n.
// Both n and the packing width have to be powers of two, and F must hold a root of
// unity of order 2n.
func New[E, P any, F field.Field[E], K field.Packing[E, P]](f F, k K, n int) (*Engine[E, P, F, K], error) {
	if !field.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("ntt: transform size %d: %w", n, ErrNotPowerOfTwo)
	}

	width := k.Width()
	if !field.IsPowerOfTwo(width) {
		return nil, fmt.Errorf("ntt: packing width %d: %w", width, ErrNotPowerOfTwo)
	}

	logN := bits.TrailingZeros(uint(n))
	root, err := f.PrimitiveRootOfUnity(logN + 1)
	if err != nil {
		return nil, fmt.Errorf("ntt: root of unity of order %d: %w", 2*n, err)
	}

	twiddles := field.Powers(f, root, n)
	BitReverse(twiddles)

	twiddleInvs := field.Powers(f, f.Inverse(root), n)
	BitReverse(twiddleInvs)

	return &Engine[E, P, F, K]{
		field:   f,
		packing: k,

		n:          n,
		logN:       logN,
		logNPacked: max(0, logN-bits.TrailingZeros(uint(width))),
		width:      width,

		root:        root,
		twiddles:    twiddles,
		twiddleInvs: twiddleInvs,
		nInv:        f.Inverse(f.FromUint64(uint64(n))),
	}, nil
}

// NewScalar builds an engine without packing.
func NewScalar[E any, F field.Field[E]](f F, n int) (*Engine[E, [1]E, F, field.Lanes1[E, F]], error) {
	return New[E, [1]E](f, field.Lanes1[E, F]{Field: f}, n)
}

// NewPacked4 builds an engine whose coarse layers work on groups of four elements.
func NewPacked4[E any, F field.Field[E]](f F, n int) (*Engine[E, [4]E, F, field.Lanes4[E, F]], error) {
	return New[E, [4]E](f, field.Lanes4[E, F]{Field: f}, n)
}

// NewPacked8 builds an engine whose coarse layers work on groups of eight elements.
func NewPacked8[E any, F field.Field[E]](f F, n int) (*Engine[E, [8]E, F, field.Lanes8[E, F]], error) {
	return New[E, [8]E](f, field.Lanes8[E, F]{Field: f}, n)
}

func (e *Engine[E, P, F, K]) N() int     { return e.n }
func (e *Engine[E, P, F, K]) LogN() int  { return e.logN }
func (e *Engine[E, P, F, K]) Width() int { return e.width }

// Root returns psi, the primitive 2n-th root of unity the twiddles are powers of.
func (e *Engine[E, P, F, K]) Root() E { return e.root }

func (e *Engine[E, P, F, K]) Field() field.Field[E] { return e.field }

// Rand returns n uniform field elements drawn from a freshly seeded stream.
func (e *Engine[E, P, F, K]) Rand() []E {
	s, err := sampling.NewRandomSampler()
	if err != nil {
		panic(err)
	}

	return e.RandFrom(s)
}

// RandFrom returns n uniform field elements read from s.
func (e *Engine[E, P, F, K]) RandFrom(s *sampling.Sampler) []E {
	return sampling.Uniform[E](s, e.field, e.n)
}

func (e *Engine[E, P, F, K]) checkLen(a []E) {
	if len(a) != e.n {
		panic(fmt.Sprintf("ntt: buffer of length %d given to an engine of size %d", len(a), e.n))
	}
}
