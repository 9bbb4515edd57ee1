package field

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Field is the scalar arithmetic an NTT engine needs from a prime field.
// Elements are expected in canonical form, i.e. in [0, Modulus()).
type Field[E any] interface {
	Modulus() uint64

	Zero() E
	One() E
	FromUint64(v uint64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	Inverse(a E) E

	// PrimitiveRootOfUnity returns an element of multiplicative order exactly 2^logOrder.
	PrimitiveRootOfUnity(logOrder int) (E, error)
}

// Packing lifts a Field to groups of Width() elements that are processed together.
//
// Pack returns a view over the same memory: writes through the packed slice are
// visible in the scalar one. len(xs) must be a multiple of Width().
type Packing[E, P any] interface {
	Width() int
	Pack(xs []E) []P

	PackedAdd(a, b P) P
	PackedSub(a, b P) P
	PackedMulScalar(a P, s E) P
}

var (
	ErrNotPowerOfTwo = errors.New("n must be a power of 2")
	ErrNotDivisible  = errors.New("2^k must divide p-1")
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	ErrPrimeTooSmall = errors.New("prime must be at least 5")
	ErrNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

func IsPowerOfTwo[T constraints.Integer](n T) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n > 0 && (n&(n-1)) == 0
}

// Pow computes base^exp in f by square and multiply.
func Pow[E any](f Field[E], base E, exp uint64) E {
	x := f.One()
	for exp > 0 {
		if exp&1 == 1 {
			x = f.Mul(x, base)
		}

		base = f.Mul(base, base)
		exp >>= 1
	}

	return x
}

// Powers returns base^0, base^1, ..., base^(n-1).
func Powers[E any](f Field[E], base E, n int) []E {
	out := make([]E, n)
	if n == 0 {
		return out
	}

	out[0] = f.One()
	for i := 1; i < n; i++ {
		out[i] = f.Mul(out[i-1], base)
	}

	return out
}
