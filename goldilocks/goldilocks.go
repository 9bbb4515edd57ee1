// Package goldilocks implements arithmetic in the prime field of order
// p = 2^64 - 2^32 + 1.
//
// Elements are canonical uint64 values in [0, p). The special shape of p lets a
// 128-bit product be reduced with a few 64-bit additions instead of a division.
package goldilocks

import (
	"fmt"
	"math/bits"

	"github.com/jonathanmweiss/go-ntt/field"
	"lukechampine.com/uint128"
)

const (
	// Modulus is 2^64 - 2^32 + 1.
	Modulus uint64 = 0xffffffff00000001

	// Generator generates the full multiplicative group.
	Generator uint64 = 7

	// TwoAdicity is the largest k such that 2^k divides p-1.
	TwoAdicity = 32

	// epsilon = 2^64 mod p.
	epsilon uint64 = 0xffffffff
)

// Field is stateless, its zero value is ready to use.
type Field struct{}

var _ field.Field[uint64] = Field{}

func (Field) Modulus() uint64 { return Modulus }
func (Field) Zero() uint64    { return 0 }
func (Field) One() uint64     { return 1 }

func (Field) FromUint64(v uint64) uint64 {
	if v >= Modulus {
		v -= Modulus
	}

	return v
}

func (Field) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	// with a carry the true sum is s + 2^64, and s - p wraps to s + epsilon.
	if carry != 0 || s >= Modulus {
		s -= Modulus
	}

	return s
}

func (Field) Sub(a, b uint64) uint64 {
	d, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		d += Modulus
	}

	return d
}

func (Field) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return Modulus - a
}

func (Field) Mul(a, b uint64) uint64 {
	return reduce128(uint128.From64(a).Mul64(b))
}

func (f Field) Square(a uint64) uint64 {
	return f.Mul(a, a)
}

func (f Field) Pow(base, exp uint64) uint64 {
	return field.Pow[uint64](f, base, exp)
}

func (f Field) Inverse(a uint64) uint64 {
	if a == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(a, Modulus-2)
}

func (f Field) PrimitiveRootOfUnity(logOrder int) (uint64, error) {
	if logOrder < 0 || logOrder > TwoAdicity {
		return 0, fmt.Errorf("goldilocks: no root of order 2^%d: %w", logOrder, field.ErrNotDivisible)
	}

	return f.Pow(Generator, (Modulus-1)>>logOrder), nil
}

// reduce128 maps x = hi*2^64 + lo to x mod p using 2^64 = 2^32 - 1 and 2^96 = -1 (mod p).
func reduce128(x uint128.Uint128) uint64 {
	hiHi := x.Hi >> 32
	hiLo := x.Hi & epsilon

	t0, borrow := bits.Sub64(x.Lo, hiHi, 0)
	if borrow != 0 {
		t0 -= epsilon // cannot underflow, t0 >= 2^64 - 2^32 here.
	}

	t1 := hiLo * epsilon // fits, hiLo < 2^32.

	t2, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		t2 += epsilon
	}

	if t2 >= Modulus {
		t2 -= Modulus
	}

	return t2
}
