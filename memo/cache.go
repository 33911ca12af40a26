// Package memo provides the get-or-compute cache used to memoize single
// entity lookups for the lifetime of a store connection.
package memo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

type ComputeFunc func(ctx context.Context) (any, error)

// Cache returns the value stored under key, or runs compute, stores its
// result and returns it. Failed computations are never stored.
type Cache interface {
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (any, error)
}

// GetOrCompute is the typed form of Cache.GetOrCompute.
func GetOrCompute[T any](
	ctx context.Context,
	cache Cache,
	key string,
	compute func(ctx context.Context) (T, error),
) (T, error) {
	var zero T
	if cache == nil {
		return compute(ctx)
	}
	value, err := cache.GetOrCompute(ctx, key, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("memo: cached value for key %q has type %T, want %T", key, value, zero)
	}
	return typed, nil
}

type Option func(*Memo)

// WithCoalescing controls whether concurrent misses for the same key share
// one computation. Without it every concurrent miss computes and the last
// write wins.
func WithCoalescing(enabled bool) Option {
	return func(m *Memo) {
		m.coalesce = enabled
	}
}

// Memo is an unbounded in-memory Cache with no expiry and no invalidation.
type Memo struct {
	mu       sync.RWMutex
	entries  map[string]any
	coalesce bool
	inflight singleflight.Group
}

func New(opts ...Option) *Memo {
	m := &Memo{
		entries:  map[string]any{},
		coalesce: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

func (m *Memo) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (any, error) {
	if m == nil {
		return nil, fmt.Errorf("memo: cache is nil")
	}
	if compute == nil {
		return nil, fmt.Errorf("memo: compute function is required")
	}
	if value, ok := m.lookup(key); ok {
		return value, nil
	}
	if !m.coalesce {
		return m.computeAndStore(ctx, key, compute)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	// the shared computation outlives any single caller; each caller still
	// stops waiting when its own context ends
	flight := context.WithoutCancel(ctx)
	results := m.inflight.DoChan(key, func() (any, error) {
		// a flight that finished between the lookup above and DoChan has
		// already stored the key
		if value, ok := m.lookup(key); ok {
			return value, nil
		}
		return m.computeAndStore(flight, key, compute)
	})
	select {
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memo) lookup(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *Memo) computeAndStore(ctx context.Context, key string, compute ComputeFunc) (any, error) {
	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
	return value, nil
}

var _ Cache = (*Memo)(nil)
