package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nttPrime = 0x1fffffffffe00001 // 2^61 - 2^21 + 1

func TestNewPrimeField(t *testing.T) {
	a := assert.New(t)

	_, err := NewPrimeField(65536)
	a.ErrorIs(err, ErrNotPrime)

	_, err = NewPrimeField(3)
	a.ErrorIs(err, ErrPrimeTooSmall)

	_, err = NewPrimeField(1<<63 + 1)
	a.ErrorIs(err, ErrPrimeTooLarge)

	f, err := NewPrimeField(65537)
	a.NoError(err)
	a.Equal(uint64(3), f.Generator())
	a.Equal(16, f.TwoAdicity())
	a.Equal([]uint64{2}, f.Factors())

	f, err = NewPrimeField(nttPrime)
	a.NoError(err)
	a.Equal(uint64(37), f.Generator())
	a.Equal(21, f.TwoAdicity())
}

func TestRootsOfUnity(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	root, err := f.PrimitiveRootOfUnity(2)
	a.NoError(err)
	a.Equal(uint64(65281), root)

	root, err = f.PrimitiveRootOfUnity(3)
	a.NoError(err)
	a.Equal(uint64(4096), root)

	root, err = f.PrimitiveRootOfUnity(1)
	a.NoError(err)
	a.Equal(f.Neg(1), root)

	root, err = f.PrimitiveRootOfUnity(0)
	a.NoError(err)
	a.Equal(uint64(1), root)

	_, err = f.PrimitiveRootOfUnity(17)
	a.ErrorIs(err, ErrNotDivisible)

	f, err = NewPrimeField(157)
	a.NoError(err)

	root, err = f.PrimitiveRootOfUnity(2)
	a.NoError(err)
	a.Equal(uint64(129), root)
}

func TestRootOrder(t *testing.T) {
	f, err := NewPrimeField(nttPrime)
	require.NoError(t, err)

	for k := 1; k <= f.TwoAdicity(); k++ {
		root, err := f.PrimitiveRootOfUnity(k)
		require.NoError(t, err)

		// root^(2^(k-1)) is the element of order two.
		require.Equal(t, f.Neg(1), f.Pow(root, 1<<(k-1)), "k=%d", k)
	}
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(nttPrime)
	a.NoError(err)

	mod := new(big.Int).SetUint64(nttPrime)
	for _, v := range []uint64{1, 2, nttPrime - 1, nttPrime / 3, 1<<61 - 1, 123456789123} {
		e1 := f.FromUint64(v)

		e2 := new(big.Int).SetUint64(v)
		e2.Mul(e2, e2)
		e2.Mod(e2, mod)

		a.Equal(e2.Uint64(), f.Mul(e1, e1))
		a.Equal(uint64(1), f.Mul(e1, f.Inverse(e1)))
		a.Equal(uint64(0), f.Add(e1, f.Neg(e1)))
		a.Equal(e1, f.Sub(f.Add(e1, 17), 17))
	}

	a.Panics(func() { f.Inverse(0) })
}

func TestIsPowerOfTwo(t *testing.T) {
	a := assert.New(t)

	a.True(IsPowerOfTwo(1))
	a.True(IsPowerOfTwo(uint64(1) << 63))
	a.True(IsPowerOfTwo(int32(1024)))
	a.False(IsPowerOfTwo(0))
	a.False(IsPowerOfTwo(-4))
	a.False(IsPowerOfTwo(12))
}

func TestPowers(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	a.Equal([]uint64{1, 5, 25, 125, 154}, Powers[uint64](f, 5, 5))
	a.Empty(Powers[uint64](f, 5, 0))
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(nttPrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.FromUint64(num)
		if e1 == 0 {
			t.Skip()
		}

		res := fld.Mul(e1, fld.Inverse(e1))
		if res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}

		if ne1 := fld.Neg(e1); fld.Add(ne1, e1) != 0 {
			t.Fatalf("expected 0, got %d", fld.Add(ne1, e1))
		}
	})
}
