// Package flight coalesces concurrent loads of the same key and keeps successful
// results for a bounded time.
package flight

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrPanicked is returned to waiters whose shared computation panicked.
var ErrPanicked = errors.New("flight: computation panicked")

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]entry[V]
	pending  map[K]*job[V]

	work func(context.Context, K) (V, error)
	ttl  time.Duration
	now  func() time.Time
}

type entry[V any] struct {
	val      V
	deadline time.Time // zero => never expires
}

type job[V any] struct {
	val  V
	err  error
	done chan struct{}
}

// NewCache returns a cache that computes misses with work. Results are held for ttl;
// ttl <= 0 keeps them until Forget.
func NewCache[K comparable, V any](work func(context.Context, K) (V, error), ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]entry[V]),
		pending:  make(map[K]*job[V]),
		work:     work,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the cached value for k, joins an in-flight computation, or starts one.
// Errors are returned to every waiter and never cached. The computation runs with the
// ctx of the caller that started it; a waiter stops waiting when its own ctx is done,
// and retries when the computation it joined was cancelled by someone else's ctx.
func (c *Cache[K, V]) Get(ctx context.Context, k K) (V, error) {
	for {
		c.mu.Lock()
		if e, ok := c.finished[k]; ok {
			if e.deadline.IsZero() || c.now().Before(e.deadline) {
				c.mu.Unlock()
				return e.val, nil
			}
			delete(c.finished, k)
		}

		if j, ok := c.pending[k]; ok {
			c.mu.Unlock()
			select {
			case <-j.done:
			case <-ctx.Done():
				var zero V
				return zero, ctx.Err()
			}
			if isCanceled(j.err) && ctx.Err() == nil {
				continue
			}
			return j.val, j.err
		}

		j := &job[V]{done: make(chan struct{})}
		c.pending[k] = j
		c.mu.Unlock()

		return c.run(ctx, k, j)
	}
}

// run computes j and releases its waiters, also when work panics.
func (c *Cache[K, V]) run(ctx context.Context, k K, j *job[V]) (V, error) {
	j.err = ErrPanicked
	defer func() {
		c.mu.Lock()
		if c.pending[k] == j {
			if j.err == nil {
				c.finished[k] = c.entry(j.val)
			}
			delete(c.pending, k)
		}
		close(j.done)
		c.mu.Unlock()
	}()

	j.val, j.err = c.work(ctx, k)
	return j.val, j.err
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Set stores v for k, replacing any cached value. A computation already in flight for
// k still completes for its waiters but does not overwrite v.
func (c *Cache[K, V]) Set(k K, v V) {
	c.mu.Lock()
	c.finished[k] = c.entry(v)
	delete(c.pending, k)
	c.mu.Unlock()
}

// Forget drops the cached value for k.
func (c *Cache[K, V]) Forget(k K) {
	c.mu.Lock()
	delete(c.finished, k)
	c.mu.Unlock()
}

func (c *Cache[K, V]) entry(v V) entry[V] {
	e := entry[V]{val: v}
	if c.ttl > 0 {
		e.deadline = c.now().Add(c.ttl)
	}
	return e
}
