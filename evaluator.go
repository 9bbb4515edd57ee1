package ntt

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jonathanmweiss/go-ntt/field"
	"github.com/jonathanmweiss/go-ntt/goldilocks"
	"github.com/jonathanmweiss/go-ntt/internal/cpu"
)

var (
	ErrPolynomialTooLarge = errors.New("polynomial has more coefficients than evaluation points")
	ErrLengthMismatch     = errors.New("operands must have the same length")
)

// Evaluator evaluates, interpolates and multiplies polynomials with NTTs of any
// power-of-two size n. The evaluation points of size n are psi*w^k for a primitive
// 2n-th root psi and w = psi^2, i.e. the roots of X^n + 1, listed in bit-reversed
// order of k.
type Evaluator[E any] struct {
	f     field.Field[E]
	cache *Cache[E]

	mu     sync.Mutex
	points map[int][]E
}

// NewEvaluator builds engines over f with the given lane width on demand.
func NewEvaluator[E any, F field.Field[E]](f F, width int) *Evaluator[E] {
	return &Evaluator[E]{
		f: f,
		cache: NewCache(func(n int) (Transform[E], error) {
			return NewWithWidth[E](f, n, width)
		}),
		points: make(map[int][]E),
	}
}

func NewGoldilocksEvaluator() *Evaluator[uint64] {
	return NewEvaluator[uint64](goldilocks.Field{}, cpu.LaneWidth())
}

func (ev *Evaluator[E]) Field() field.Field[E] {
	return ev.f
}

// Transform returns the engine of size n.
func (ev *Evaluator[E]) Transform(n int) (Transform[E], error) {
	return ev.cache.Get(n)
}

// EvaluationPoints returns the n points EvaluatePolynomial evaluates at, in output order.
func (ev *Evaluator[E]) EvaluationPoints(n int) ([]E, error) {
	ev.mu.Lock()
	points, ok := ev.points[n]
	ev.mu.Unlock()
	if ok {
		return append([]E(nil), points...), nil
	}

	t, err := ev.cache.Get(n)
	if err != nil {
		return nil, err
	}

	if n == 1 {
		points = []E{t.Root()}
	} else {
		// the transform of p(x) = x lists the points themselves.
		points = make([]E, n)
		for i := range points {
			points[i] = ev.f.Zero()
		}
		points[1] = ev.f.One()
		t.Forward(points)
	}

	ev.mu.Lock()
	ev.points[n] = points
	ev.mu.Unlock()

	return append([]E(nil), points...), nil
}

// EvaluatePolynomial zero-pads coeffs to n and returns its n evaluations.
// coeffs is left untouched.
func (ev *Evaluator[E]) EvaluatePolynomial(coeffs []E, n int) ([]E, error) {
	if len(coeffs) > n {
		return nil, fmt.Errorf("%w: %d > %d", ErrPolynomialTooLarge, len(coeffs), n)
	}

	t, err := ev.cache.Get(n)
	if err != nil {
		return nil, err
	}

	values := make([]E, n)
	copy(values, coeffs)
	for i := len(coeffs); i < n; i++ {
		values[i] = ev.f.Zero()
	}

	return t.Forward(values), nil
}

// Interpolate returns the coefficients of the unique polynomial of degree below
// len(values) taking these values at EvaluationPoints(len(values)).
func (ev *Evaluator[E]) Interpolate(values []E) ([]E, error) {
	t, err := ev.cache.Get(len(values))
	if err != nil {
		return nil, err
	}

	coeffs := append([]E(nil), values...)

	return t.Normalize(t.Backward(coeffs)), nil
}

// MulNegacyclic returns a*b mod X^n + 1, n = len(a) = len(b).
func (ev *Evaluator[E]) MulNegacyclic(a, b []E) ([]E, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	t, err := ev.cache.Get(len(a))
	if err != nil {
		return nil, err
	}

	ea := append([]E(nil), a...)
	eb := append([]E(nil), b...)
	t.ForwardBatch(ea, eb)

	for i := range ea {
		ea[i] = ev.f.Mul(ea[i], eb[i])
	}

	return t.Normalize(t.Backward(ea)), nil
}

// VanishingPolynomial returns X^n + 1, the polynomial vanishing on EvaluationPoints(n).
func (ev *Evaluator[E]) VanishingPolynomial(n int) []E {
	coeffs := make([]E, n+1)
	for i := range coeffs {
		coeffs[i] = ev.f.Zero()
	}

	coeffs[0] = ev.f.One()
	coeffs[n] = ev.f.One()

	return coeffs
}
