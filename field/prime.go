package field

import (
	"math/big"
	"math/bits"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is Z_p for a prime p below 2^63, elements are plain uint64 values.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
	twoAdic   int
}

const maxBitUsage = 63

/*
NewPrimeField checks primality, then searches a generator of the multiplicative group.
NTT sizes supported by the field are bounded by the largest power of two dividing p-1.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	// the generator search below starts at 3.
	if prime < 5 {
		return nil, ErrPrimeTooSmall
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, ErrNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
		twoAdic:   bits.TrailingZeros64(prime - 1),
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

// TwoAdicity is the largest k such that 2^k divides p-1.
func (f *PrimeField) TwoAdicity() int {
	return f.twoAdic
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

func (f *PrimeField) FromUint64(v uint64) uint64 {
	return v % f.prime
}

func (f *PrimeField) PrimitiveRootOfUnity(logOrder int) (uint64, error) {
	if logOrder < 0 || logOrder > f.twoAdic {
		return 0, ErrNotDivisible
	}

	// The generator raised to (p-1)/2^k has order exactly 2^k,
	// since g^x == 1 (mod p) iff p-1 divides x.
	return f.Pow(f.generator, (f.prime-1)>>logOrder), nil
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(f.prime)
}

func (f *PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	return Pow[uint64](f, base%f.prime, exp)
}

func (f *PrimeField) Inverse(a uint64) uint64 {
	// Fermat's little theorem: a^(p-1) = 1 (mod p)
	// thus a^(p-2) is the inverse of a.
	if a == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}
