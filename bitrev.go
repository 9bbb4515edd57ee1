package ntt

import (
	"fmt"
	"math/bits"

	"github.com/jonathanmweiss/go-ntt/field"
)

// BitReverse permutes a in place so that a[i] moves to a[reverse(i)], where
// reverse flips the log2(len(a)) low bits of i. Applying it twice is the identity.
// len(a) must be a power of two.
func BitReverse[T any](a []T) {
	n := len(a)
	if n <= 2 {
		return
	}

	if !field.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("BitReverse: length %d is not a power of two", n))
	}

	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> shift)
		// each pair swapped once.
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
