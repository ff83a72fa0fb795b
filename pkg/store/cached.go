package store

import (
	"context"
	"time"

	"velorabook/pkg/flight"
	"velorabook/pkg/schema"
)

// Cached is a read-through cache in front of another Store. Concurrent loads of the
// same owner share one backend read; saves refresh the cached copy.
type Cached struct {
	next  Store
	cache *flight.Cache[string, schema.Book]
}

func NewCached(next Store, ttl time.Duration) *Cached {
	c := &Cached{next: next}
	c.cache = flight.NewCache(next.Load, ttl)
	return c
}

func (c *Cached) Save(ctx context.Context, owner string, book schema.Book) error {
	if err := c.next.Save(ctx, owner, book); err != nil {
		c.cache.Forget(owner)
		return err
	}
	c.cache.Set(owner, book)
	return nil
}

func (c *Cached) Load(ctx context.Context, owner string) (schema.Book, error) {
	return c.cache.Get(ctx, owner)
}
