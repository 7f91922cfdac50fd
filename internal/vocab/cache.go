package vocab

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches the full vocabulary.
type LoadFunc func(ctx context.Context) ([]Entry, error)

// Cache memoizes a vocabulary load. Concurrent first-time callers share one
// in-flight load; once a load succeeds every later call is a single atomic
// read. Failed loads are not memoized.
type Cache struct {
	load   LoadFunc
	group  singleflight.Group
	loaded atomic.Pointer[[]Entry]
}

// NewCache creates a cache around load.
func NewCache(load LoadFunc) *Cache {
	return &Cache{load: load}
}

// GetOrLoad returns the cached vocabulary, loading it on first use.
func (c *Cache) GetOrLoad(ctx context.Context) ([]Entry, error) {
	if p := c.loaded.Load(); p != nil {
		return *p, nil
	}
	v, err, _ := c.group.Do("vocabulary", func() (any, error) {
		if p := c.loaded.Load(); p != nil {
			return *p, nil
		}
		entries, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []Entry{}
		}
		c.loaded.Store(&entries)
		return entries, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return v.([]Entry), nil
}

// AllVocabulary implements the engine's vocabulary source.
func (c *Cache) AllVocabulary(ctx context.Context) ([]Entry, error) {
	return c.GetOrLoad(ctx)
}

// Invalidate drops the cached vocabulary so the next call reloads it.
func (c *Cache) Invalidate() {
	c.loaded.Store(nil)
}
