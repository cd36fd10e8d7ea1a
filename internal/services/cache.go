package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Generic in-memory cache with type safety
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*cacheItem[V]
	ttl   time.Duration
}

type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	c := &Cache[K, V]{
		items: make(map[K]*cacheItem[V]),
		ttl:   ttl,
	}

	// Start cleanup goroutine
	go c.cleanup()

	return c
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiration) {
		var zero V
		return zero, false
	}

	return item.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *Cache[K, V]) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiration) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// KeyedSource memoizes a keyed fetch function with a TTL and substitutes
// a static fallback value on any fetch failure. It never returns an
// error: callers can treat it as always succeeding. Two requests racing
// on the same key may both fetch; last write wins.
type KeyedSource[V any] struct {
	name     string
	cache    *Cache[string, V]
	fetch    func(ctx context.Context, key string) (V, error)
	fallback func(key string) V
	log      zerolog.Logger
}

func NewKeyedSource[V any](
	name string,
	ttl time.Duration,
	fetch func(ctx context.Context, key string) (V, error),
	fallback func(key string) V,
	log zerolog.Logger,
) *KeyedSource[V] {
	return &KeyedSource[V]{
		name:     name,
		cache:    NewCache[string, V](ttl),
		fetch:    fetch,
		fallback: fallback,
		log:      log,
	}
}

func (s *KeyedSource[V]) Get(ctx context.Context, key string) V {
	if cached, found := s.cache.Get(key); found {
		return cached
	}

	value, err := s.fetch(ctx, key)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("source", s.name).
			Str("key", key).
			Msg("live fetch failed, using fallback")
		value = s.fallback(key)
	}

	s.cache.Set(key, value)
	return value
}

// Refresh bypasses the cache and re-runs the fetch, keeping the cached
// value warm. Used by the background warmer.
func (s *KeyedSource[V]) Refresh(ctx context.Context, key string) {
	s.cache.Invalidate(key)
	s.Get(ctx, key)
}

// Source is a KeyedSource with a single value.
type Source[V any] struct {
	keyed *KeyedSource[V]
}

func NewSource[V any](
	name string,
	ttl time.Duration,
	fetch func(ctx context.Context) (V, error),
	fallback func() V,
	log zerolog.Logger,
) *Source[V] {
	return &Source[V]{
		keyed: NewKeyedSource[V](
			name,
			ttl,
			func(ctx context.Context, _ string) (V, error) { return fetch(ctx) },
			func(_ string) V { return fallback() },
			log,
		),
	}
}

func (s *Source[V]) Get(ctx context.Context) V {
	return s.keyed.Get(ctx, "")
}

func (s *Source[V]) Refresh(ctx context.Context) {
	s.keyed.Refresh(ctx, "")
}
