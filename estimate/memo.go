package estimate

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo wraps an Estimator with a result cache. Identical expression texts
// hit the cache; concurrent first requests for the same text are collapsed
// into a single computation.
type Memo struct {
	est *Estimator

	group singleflight.Group
	mu    sync.RWMutex
	seen  map[string]Result
}

// NewMemo wraps est with caching.
func NewMemo(est *Estimator) *Memo {
	return &Memo{est: est, seen: make(map[string]Result)}
}

// Estimate returns a cached result when available; otherwise it computes
// once, caches, and serves everyone waiting on the same text.
func (m *Memo) Estimate(src string) Result {
	m.mu.RLock()
	cached, ok := m.seen[src]
	m.mu.RUnlock()
	if ok {
		return cached
	}

	v, _, _ := m.group.Do(src, func() (any, error) {
		res := m.est.Estimate(src)
		m.mu.Lock()
		m.seen[src] = res
		m.mu.Unlock()
		return res, nil
	})
	return v.(Result)
}

// Len reports the number of cached results.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.seen)
}
