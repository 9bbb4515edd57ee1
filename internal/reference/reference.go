// Package reference holds textbook quadratic-time evaluations used to check the NTT engine.
package reference

import "github.com/jonathanmweiss/go-ntt/field"

// Evaluate returns p(x) by horner's rule, coefficients ordered from lowest degree.
func Evaluate[E any](f field.Field[E], coeffs []E, x E) E {
	result := f.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = f.Add(coeffs[i], f.Mul(x, result))
	}

	return result
}

// CosetEvaluate returns p(shift * root^k) for k = 0..len(coeffs)-1, in natural order.
func CosetEvaluate[E any](f field.Field[E], coeffs []E, shift, root E) []E {
	values := make([]E, len(coeffs))

	x := shift
	for k := range values {
		values[k] = Evaluate(f, coeffs, x)
		x = f.Mul(x, root)
	}

	return values
}

// NegacyclicMul returns a*b mod X^n + 1 by schoolbook multiplication, n = len(a) = len(b).
func NegacyclicMul[E any](f field.Field[E], a, b []E) []E {
	n := len(a)
	c := make([]E, n)
	for i := range c {
		c[i] = f.Zero()
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := f.Mul(a[i], b[j])
			if k := i + j; k < n {
				c[k] = f.Add(c[k], prod)
			} else {
				// X^n = -1
				c[k-n] = f.Sub(c[k-n], prod)
			}
		}
	}

	return c
}
