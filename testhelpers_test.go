package ntt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-ntt/field"
	"github.com/jonathanmweiss/go-ntt/goldilocks"
	"github.com/jonathanmweiss/go-ntt/sampling"
)

// nttPrime = 2^61 - 2^21 + 1 is small enough for lattigo's ring.
const nttPrime = 0x1fffffffffe00001

type testField struct {
	name string
	f    field.Field[uint64]
}

func testFields(t testing.TB) []testField {
	t.Helper()

	p61, err := field.NewPrimeField(nttPrime)
	require.NoError(t, err)

	fermat, err := field.NewPrimeField(65537)
	require.NoError(t, err)

	return []testField{
		{"goldilocks", goldilocks.Field{}},
		{"p61", p61},
		{"fermat", fermat},
	}
}

var testWidths = []int{1, 4, 8}

func newTestTransform(t testing.TB, tf testField, n, width int) Transform[uint64] {
	t.Helper()

	tr, err := NewWithWidth[uint64](tf.f, n, width)
	require.NoError(t, err)

	return tr
}

func testSampler(name string) *sampling.Sampler {
	return sampling.NewSampler([]byte(fmt.Sprintf("go-ntt/%s", name)))
}

func bitReversed[T any](a []T) []T {
	out := append([]T(nil), a...)
	BitReverse(out)

	return out
}
