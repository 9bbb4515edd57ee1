package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-ntt/field"
	"github.com/jonathanmweiss/go-ntt/goldilocks"
)

func TestUniformDeterministic(t *testing.T) {
	a := assert.New(t)

	seed := []byte("go-ntt sampling test")
	x := Uniform[uint64](NewSampler(seed), goldilocks.Field{}, 256)
	y := Uniform[uint64](NewSampler(seed), goldilocks.Field{}, 256)
	a.Equal(x, y)

	z := Uniform[uint64](NewSampler([]byte("another seed")), goldilocks.Field{}, 256)
	a.NotEqual(x, z)

	s := NewSampler([]byte("another seed"))
	_ = s.Uint64()
	s.Reset(seed)
	a.Equal(x, Uniform[uint64](s, goldilocks.Field{}, 256))
}

func TestUniformInRange(t *testing.T) {
	f, err := field.NewPrimeField(65537)
	require.NoError(t, err)

	s, err := NewRandomSampler()
	require.NoError(t, err)

	xs := Uniform[uint64](s, f, 4096)
	require.Len(t, xs, 4096)

	seen := make(map[uint64]struct{})
	for _, x := range xs {
		require.Less(t, x, f.Modulus())
		seen[x] = struct{}{}
	}

	// 4096 draws out of 65537 values collide rarely.
	require.Greater(t, len(seen), 3900)
}
