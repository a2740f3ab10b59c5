// Package cache provides an in-memory, time-expiring key/value store.
//
// Entries expire a fixed TTL after insertion and are removed lazily when a
// read encounters them; there is no background sweep. Keys are spread over
// mutex-guarded shards selected by xxhash. Concurrent loads of the same
// missing key are collapsed into a single call.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long an entry stays fresh after it is stored.
const DefaultTTL = 5 * time.Minute

// DefaultShards is the default number of shards.
const DefaultShards = 16

type entry struct {
	value     any
	expiresAt time.Time
}

type shard struct {
	mu    sync.Mutex
	items map[string]entry
}

// Cache is a sharded TTL cache. The zero value is not usable; use New.
type Cache struct {
	ttl         time.Duration
	now         func() time.Time
	shards      []*shard
	maxEntries  int
	maxPerShard int
	group       singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the time-to-live applied to every entry.
// Defaults to DefaultTTL (5m) if not specified.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithClock replaces time.Now, for deterministic expiry in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithShards sets the number of shards. Values below 1 are ignored.
func WithShards(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.shards = make([]*shard, n)
		}
	}
}

// WithMaxEntries bounds the number of stored entries. Zero means unbounded.
// When a shard is full, its expired entries are dropped first, then the
// entry closest to expiry.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// New creates a new Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:    DefaultTTL,
		now:    time.Now,
		shards: make([]*shard, DefaultShards),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i := range c.shards {
		c.shards[i] = &shard{items: make(map[string]entry)}
	}
	if c.maxEntries > 0 {
		n := len(c.shards)
		c.maxPerShard = (c.maxEntries + n - 1) / n
	}

	return c
}

func (c *Cache) shardFor(key string) *shard {
	return c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get returns the value stored under key. An expired entry is deleted and
// reported as absent.
func (c *Cache) Get(key string) (any, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(s.items, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := c.now()
	if _, exists := s.items[key]; !exists && c.maxPerShard > 0 && len(s.items) >= c.maxPerShard {
		s.evict(now, c.maxPerShard)
	}
	s.items[key] = entry{value: value, expiresAt: now.Add(c.ttl)}
}

// Len returns the number of stored entries, including expired entries
// that have not been read since expiring.
func (c *Cache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.items)
		s.mu.Unlock()
	}
	return n
}

// evict makes room for one entry. Caller holds s.mu.
func (s *shard) evict(now time.Time, limit int) {
	for k, e := range s.items {
		if !now.Before(e.expiresAt) {
			delete(s.items, k)
		}
	}
	if len(s.items) < limit {
		return
	}

	var oldestKey string
	var oldest time.Time
	for k, e := range s.items {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey, oldest = k, e.expiresAt
		}
	}
	delete(s.items, oldestKey)
}

// Load returns the cached value for key, or calls fn and caches its result.
// Concurrent Loads of the same key share one call to fn. fn is not cancelled
// with any single caller; each caller stops waiting when its own ctx is done.
// Errors are not cached.
func Load[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			if t, ok := v.(T); ok {
				return t, nil
			}
		}
		t, err := fn(loadCtx)
		if err != nil {
			return nil, err
		}
		c.Set(key, t)
		return t, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
