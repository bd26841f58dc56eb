package ratecache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/invoice_normalizer_app/internal/adapters/ratecache"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func TestMemory_GetMiss(t *testing.T) {
	cache := ratecache.NewMemory(time.Hour)

	_, ok := cache.Get("USD")
	assert.False(t, ok)
}

func TestMemory_PutThenGet(t *testing.T) {
	now := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	cache := ratecache.NewMemory(time.Hour, ratecache.WithClock(fixedClock(&now)))

	cache.Put("USD", domain.ExchangeRate{Rate: decimal.NewFromFloat(83.12), FetchedAt: now})

	entry, ok := cache.Get("USD")
	require.True(t, ok)
	assert.True(t, entry.Rate.Equal(decimal.NewFromFloat(83.12)))
	assert.Equal(t, now.Add(time.Hour), entry.ExpiresAt)
}

func TestMemory_ExpiredEntryBehavesAsAbsent(t *testing.T) {
	now := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	cache := ratecache.NewMemory(time.Hour, ratecache.WithClock(fixedClock(&now)))

	cache.Put("USD", domain.ExchangeRate{Rate: decimal.NewFromFloat(83.12), FetchedAt: now})

	// Just inside the window.
	now = now.Add(59 * time.Minute)
	_, ok := cache.Get("USD")
	assert.True(t, ok)

	// Past the window: the entry must never be served again.
	now = now.Add(2 * time.Minute)
	_, ok = cache.Get("USD")
	assert.False(t, ok)
}

func TestMemory_PutEvictsExpiredEntries(t *testing.T) {
	now := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	cache := ratecache.NewMemory(time.Hour, ratecache.WithClock(fixedClock(&now)))

	cache.Put("USD", domain.ExchangeRate{Rate: decimal.NewFromFloat(83.12), FetchedAt: now})
	cache.Put("EUR", domain.ExchangeRate{Rate: decimal.NewFromFloat(89.50), FetchedAt: now})
	require.Equal(t, 2, cache.Len())

	now = now.Add(2 * time.Hour)
	cache.Put("GBP", domain.ExchangeRate{Rate: decimal.NewFromFloat(105.20), FetchedAt: now})

	assert.Equal(t, 1, cache.Len())
}

func TestMemory_RefreshExtendsExpiry(t *testing.T) {
	now := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	cache := ratecache.NewMemory(time.Hour, ratecache.WithClock(fixedClock(&now)))

	cache.Put("USD", domain.ExchangeRate{Rate: decimal.NewFromFloat(83.12), FetchedAt: now})

	now = now.Add(50 * time.Minute)
	cache.Put("USD", domain.ExchangeRate{Rate: decimal.NewFromFloat(84.00), FetchedAt: now})

	now = now.Add(50 * time.Minute)
	entry, ok := cache.Get("USD")
	require.True(t, ok)
	assert.True(t, entry.Rate.Equal(decimal.NewFromFloat(84.00)))
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	cache := ratecache.NewMemory(time.Hour)
	codes := []string{"USD", "EUR", "GBP", "JPY"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				code := codes[(worker+j)%len(codes)]
				cache.Put(code, domain.ExchangeRate{
					Rate:      decimal.NewFromInt(int64(j + 1)),
					FetchedAt: time.Now(),
				})
				if entry, ok := cache.Get(code); ok {
					// Whatever is read must be a value some writer stored.
					assert.False(t, entry.Rate.IsZero(), fmt.Sprintf("zero rate for %s", code))
				}
			}
		}(i)
	}
	wg.Wait()
}
