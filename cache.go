package ntt

import "sync"

// Cache memoizes one Transform per size, built on first use.
type Cache[E any] struct {
	mu      sync.RWMutex
	build   func(n int) (Transform[E], error)
	engines map[int]Transform[E]
}

func NewCache[E any](build func(n int) (Transform[E], error)) *Cache[E] {
	return &Cache[E]{
		build:   build,
		engines: make(map[int]Transform[E]),
	}
}

// Get returns the Transform of size n, building its twiddle tables if needed.
func (c *Cache[E]) Get(n int) (Transform[E], error) {
	c.mu.RLock()
	if t, ok := c.engines[n]; ok {
		c.mu.RUnlock()
		return t, nil
	}
	c.mu.RUnlock()

	// Build outside lock
	t, err := c.build(n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have won the race; keep the first one.
	if existing, ok := c.engines[n]; ok {
		return existing, nil
	}

	c.engines[n] = t

	return t, nil
}

// Len reports how many sizes are cached.
func (c *Cache[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.engines)
}
