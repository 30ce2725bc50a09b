package querycache

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

type Config struct {
	// StaleTime is how long a resolved value keeps being served without a
	// re-fetch.
	StaleTime time.Duration
	// RetryCount is the number of automatic retries after a failed fetch
	// attempt.
	RetryCount uint64
	RetryWait  time.Duration
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

func DefaultConfig() Config {
	return Config{
		StaleTime:  5 * time.Minute,
		RetryCount: 1,
		RetryWait:  100 * time.Millisecond,
	}
}

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache memoizes query results by key. Entries are fresh for StaleTime after a
// successful fetch; concurrent fetches for one key are collapsed; a fetch that
// completes after its key was invalidated is discarded instead of overwriting
// the newer state.
type Cache[V any] struct {
	cfg   Config
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry[V]
	gens    map[string]uint64
}

func New[V any](cfg Config) *Cache[V] {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Cache[V]{
		cfg:     cfg,
		entries: make(map[string]entry[V]),
		gens:    make(map[string]uint64),
	}
}

// Get returns the cached value for key when it is still fresh, otherwise
// resolves it through fetch (with bounded retries) and caches the result.
func (c *Cache[V]) Get(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.cfg.Clock().Sub(e.fetchedAt) < c.cfg.StaleTime {
		c.mu.Unlock()
		return e.value, nil
	}
	gen := c.gens[key]
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another flight may have refreshed the entry while this one waited.
		c.mu.Lock()
		if e, ok := c.entries[key]; ok && c.cfg.Clock().Sub(e.fetchedAt) < c.cfg.StaleTime {
			c.mu.Unlock()
			return e.value, nil
		}
		c.mu.Unlock()

		var value V
		op := func() error {
			var fetchErr error
			value, fetchErr = fetch(ctx)
			return fetchErr
		}

		err := backoff.Retry(op, backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryWait), c.cfg.RetryCount),
			ctx,
		))
		if err != nil {
			return nil, err
		}

		c.store(key, gen, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}

// Invalidate drops the entry for key and marks any in-flight fetch for it as
// superseded.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.gens[key]++
}

func (c *Cache[V]) store(key string, gen uint64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[key] != gen {
		// Superseded while in flight.
		return
	}

	c.entries[key] = entry[V]{value: value, fetchedAt: c.cfg.Clock()}
}
