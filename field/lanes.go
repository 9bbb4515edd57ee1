package field

import (
	"fmt"
	"unsafe"
)

// Lanes1 is the degenerate packing: every packed group holds a single element.
// Engines built on it run the whole network element by element.
type Lanes1[E any, F Field[E]] struct{ Field F }

func (l Lanes1[E, F]) Width() int { return 1 }

func (l Lanes1[E, F]) Pack(xs []E) [][1]E { return packSlice[[1]E](xs, 1) }

func (l Lanes1[E, F]) PackedAdd(a, b [1]E) [1]E {
	a[0] = l.Field.Add(a[0], b[0])
	return a
}

func (l Lanes1[E, F]) PackedSub(a, b [1]E) [1]E {
	a[0] = l.Field.Sub(a[0], b[0])
	return a
}

func (l Lanes1[E, F]) PackedMulScalar(a [1]E, s E) [1]E {
	a[0] = l.Field.Mul(a[0], s)
	return a
}

// Lanes4 groups four consecutive elements, the shape of a 256-bit vector of 64-bit words.
type Lanes4[E any, F Field[E]] struct{ Field F }

func (l Lanes4[E, F]) Width() int { return 4 }

func (l Lanes4[E, F]) Pack(xs []E) [][4]E { return packSlice[[4]E](xs, 4) }

func (l Lanes4[E, F]) PackedAdd(a, b [4]E) [4]E {
	for i := range a {
		a[i] = l.Field.Add(a[i], b[i])
	}

	return a
}

func (l Lanes4[E, F]) PackedSub(a, b [4]E) [4]E {
	for i := range a {
		a[i] = l.Field.Sub(a[i], b[i])
	}

	return a
}

func (l Lanes4[E, F]) PackedMulScalar(a [4]E, s E) [4]E {
	for i := range a {
		a[i] = l.Field.Mul(a[i], s)
	}

	return a
}

// Lanes8 groups eight consecutive elements (512-bit vectors of 64-bit words).
type Lanes8[E any, F Field[E]] struct{ Field F }

func (l Lanes8[E, F]) Width() int { return 8 }

func (l Lanes8[E, F]) Pack(xs []E) [][8]E { return packSlice[[8]E](xs, 8) }

func (l Lanes8[E, F]) PackedAdd(a, b [8]E) [8]E {
	for i := range a {
		a[i] = l.Field.Add(a[i], b[i])
	}

	return a
}

func (l Lanes8[E, F]) PackedSub(a, b [8]E) [8]E {
	for i := range a {
		a[i] = l.Field.Sub(a[i], b[i])
	}

	return a
}

func (l Lanes8[E, F]) PackedMulScalar(a [8]E, s E) [8]E {
	for i := range a {
		a[i] = l.Field.Mul(a[i], s)
	}

	return a
}

// packSlice reinterprets xs as a slice of width-sized arrays without copying.
// An array [w]E has the layout of w consecutive E, so the view aliases xs exactly.
func packSlice[P, E any](xs []E, width int) []P {
	if len(xs)%width != 0 {
		panic(fmt.Sprintf("cannot pack %d elements into groups of %d", len(xs), width))
	}

	if len(xs) == 0 {
		return nil
	}

	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(xs))), len(xs)/width)
}
