package ntt

// Forward runs the decimation-in-time network on a in place: coefficients in
// natural order become evaluations in bit-reversed order. It returns a.
//
// Layer l splits the buffer into 2^l blocks, each combined with twiddle l's block
// entry psi^brv(2^l+block). Layers whose half-block spans at least one packed group
// run on packed groups, the last log2(width) layers run on single elements.
func (e *Engine[E, P, F, K]) Forward(a []E) []E {
	e.checkLen(a)

	if e.logNPacked > 0 {
		packed := e.packing.Pack(a)
		for layer := 0; layer < e.logNPacked; layer++ {
			m, size := 1<<layer, 1<<(e.logNPacked-1-layer)
			for block := 0; block < m; block++ {
				lo := packed[2*block*size : (2*block+1)*size]
				hi := packed[(2*block+1)*size : (2*block+2)*size]
				e.ditPacked(lo, hi, e.twiddles[m+block])
			}
		}
	}

	for layer := e.logNPacked; layer < e.logN; layer++ {
		m, size := 1<<layer, 1<<(e.logN-1-layer)
		for block := 0; block < m; block++ {
			lo := a[2*block*size : (2*block+1)*size]
			hi := a[(2*block+1)*size : (2*block+2)*size]
			e.dit(lo, hi, e.twiddles[m+block])
		}
	}

	return a
}

// Backward runs the decimation-in-frequency network on a in place: evaluations in
// bit-reversed order become coefficients in natural order, multiplied by n.
// The layers of Forward are undone in reverse order. It returns a.
func (e *Engine[E, P, F, K]) Backward(a []E) []E {
	e.checkLen(a)

	for layer := e.logN - 1; layer >= e.logNPacked; layer-- {
		m, size := 1<<layer, 1<<(e.logN-1-layer)
		for block := 0; block < m; block++ {
			lo := a[2*block*size : (2*block+1)*size]
			hi := a[(2*block+1)*size : (2*block+2)*size]
			e.dif(lo, hi, e.twiddleInvs[m+block])
		}
	}

	if e.logNPacked > 0 {
		packed := e.packing.Pack(a)
		for layer := e.logNPacked - 1; layer >= 0; layer-- {
			m, size := 1<<layer, 1<<(e.logNPacked-1-layer)
			for block := 0; block < m; block++ {
				lo := packed[2*block*size : (2*block+1)*size]
				hi := packed[(2*block+1)*size : (2*block+2)*size]
				e.difPacked(lo, hi, e.twiddleInvs[m+block])
			}
		}
	}

	return a
}

// Normalize multiplies every element of a by n^-1. Backward leaves its output
// scaled by n so that several inverse transforms can share one normalization.
func (e *Engine[E, P, F, K]) Normalize(a []E) []E {
	e.checkLen(a)

	if e.n >= e.width {
		packed := e.packing.Pack(a)
		for i := range packed {
			packed[i] = e.packing.PackedMulScalar(packed[i], e.nInv)
		}

		return a
	}

	for i := range a {
		a[i] = e.field.Mul(a[i], e.nInv)
	}

	return a
}

// (a, b) <- (a + bt, a - bt)
func (e *Engine[E, P, F, K]) dit(lo, hi []E, t E) {
	f := e.field
	for j := range lo {
		bt := f.Mul(hi[j], t)
		lo[j], hi[j] = f.Add(lo[j], bt), f.Sub(lo[j], bt)
	}
}

func (e *Engine[E, P, F, K]) ditPacked(lo, hi []P, t E) {
	k := e.packing
	for j := range lo {
		bt := k.PackedMulScalar(hi[j], t)
		lo[j], hi[j] = k.PackedAdd(lo[j], bt), k.PackedSub(lo[j], bt)
	}
}

// (a, b) <- (a + b, (a - b)t)
func (e *Engine[E, P, F, K]) dif(lo, hi []E, t E) {
	f := e.field
	for j := range lo {
		lo[j], hi[j] = f.Add(lo[j], hi[j]), f.Mul(f.Sub(lo[j], hi[j]), t)
	}
}

func (e *Engine[E, P, F, K]) difPacked(lo, hi []P, t E) {
	k := e.packing
	for j := range lo {
		lo[j], hi[j] = k.PackedAdd(lo[j], hi[j]), k.PackedMulScalar(k.PackedSub(lo[j], hi[j]), t)
	}
}
