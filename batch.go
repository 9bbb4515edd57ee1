package ntt

import (
	"runtime"
	"sync"
)

// ForwardBatch applies Forward to every buffer. Buffers are spread over up to
// runtime.NumCPU() goroutines; each buffer is transformed by a single goroutine.
// The buffers must not overlap.
func (e *Engine[E, P, F, K]) ForwardBatch(bufs ...[]E) {
	e.runBatch(bufs, func(a []E) { e.Forward(a) })
}

// BackwardBatch applies Backward to every buffer, without normalizing.
func (e *Engine[E, P, F, K]) BackwardBatch(bufs ...[]E) {
	e.runBatch(bufs, func(a []E) { e.Backward(a) })
}

func (e *Engine[E, P, F, K]) NormalizeBatch(bufs ...[]E) {
	e.runBatch(bufs, func(a []E) { e.Normalize(a) })
}

func (e *Engine[E, P, F, K]) runBatch(bufs [][]E, fn func([]E)) {
	// length violations surface on the caller's goroutine.
	for _, a := range bufs {
		e.checkLen(a)
	}

	workers := min(runtime.NumCPU(), len(bufs))
	if workers <= 1 {
		for _, a := range bufs {
			fn(a)
		}

		return
	}

	jobs := make(chan []E, len(bufs))
	for _, a := range bufs {
		jobs <- a
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for a := range jobs {
				fn(a)
			}
		}()
	}

	wg.Wait()
}
