package ratecache

import (
	"sync"
	"time"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
)

// Memory is a process-scoped, mutex-protected rate cache keyed by source
// currency code. Entries expire after the configured TTL; expired entries
// behave as absent on Get and are lazily evicted on the next Put.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]domain.ExchangeRate
}

// Option customizes a Memory cache.
type Option func(*Memory)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Memory) {
		c.now = now
	}
}

// NewMemory creates an empty cache whose entries live for ttl.
func NewMemory(ttl time.Duration, opts ...Option) *Memory {
	c := &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]domain.ExchangeRate),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached rate for a code if one exists and is still within
// its TTL window.
func (c *Memory) Get(code string) (domain.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[code]
	if !ok || !entry.IsValid(c.now()) {
		return domain.ExchangeRate{}, false
	}
	return entry, true
}

// Put stores a rate under the code, stamping its expiry from the cache TTL,
// and sweeps any entries that have expired in the meantime.
func (c *Memory) Put(code string, rate domain.ExchangeRate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if !entry.IsValid(now) {
			delete(c.entries, key)
		}
	}

	rate.ExpiresAt = now.Add(c.ttl)
	c.entries[code] = rate
}

// Len reports the number of stored entries, expired ones included.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
