// Package ntt implements a radix-2 Number-Theoretic Transform over prime fields.
//
// An Engine is built once per size n. It precomputes the powers of a primitive
// 2n-th root of unity psi in bit-reversed order, and then transforms caller-owned
// buffers in place:
//
//	tr, _ := ntt.NewGoldilocks(1024)
//	x := tr.Rand()
//	tr.Forward(x)                  // evaluations at psi*w^k, bit-reversed order
//	tr.Normalize(tr.Backward(x))   // back to coefficients
//
// The coarse layers of the butterfly network run on packed groups of field
// elements (see field.Packing), the layers finer than one group run element by
// element. Pointwise products of Forward outputs multiply polynomials modulo X^n + 1.
package ntt
