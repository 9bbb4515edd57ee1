package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackAliases(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	xs := []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	l4 := Lanes4[uint64, *PrimeField]{Field: f}
	packed := l4.Pack(xs)
	a.Len(packed, 2)
	a.Equal([4]uint64{5, 6, 7, 8}, packed[1])

	packed[1] = l4.PackedMulScalar(packed[1], 2)
	a.Equal([]uint64{1, 2, 3, 4, 10, 12, 14, 16}, xs)

	l8 := Lanes8[uint64, *PrimeField]{Field: f}
	a.Len(l8.Pack(xs), 1)
	a.Nil(l8.Pack(nil))

	a.Panics(func() { l8.Pack(xs[:4]) })
}

func TestLanesArithmetic(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	l1 := Lanes1[uint64, *PrimeField]{Field: f}
	l4 := Lanes4[uint64, *PrimeField]{Field: f}
	l8 := Lanes8[uint64, *PrimeField]{Field: f}

	a.Equal(1, l1.Width())
	a.Equal(4, l4.Width())
	a.Equal(8, l8.Width())

	a.Equal([1]uint64{3}, l1.PackedAdd([1]uint64{156}, [1]uint64{4}))
	a.Equal([1]uint64{153}, l1.PackedSub([1]uint64{1}, [1]uint64{5}))
	a.Equal([1]uint64{3}, l1.PackedMulScalar([1]uint64{80}, 2))

	x := [4]uint64{1, 2, 3, 156}
	y := [4]uint64{156, 155, 0, 1}
	a.Equal([4]uint64{0, 0, 3, 0}, l4.PackedAdd(x, y))
	a.Equal([4]uint64{2, 4, 3, 155}, l4.PackedSub(x, y))

	var z [8]uint64
	for i := range z {
		z[i] = uint64(i)
	}
	a.Equal(z, l8.PackedSub(l8.PackedAdd(z, z), z))
}
