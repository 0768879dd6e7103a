package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

func TestKey(t *testing.T) {
	a := validators.Resolved{Scheme: validators.SchemeAnnuity, Target: validators.TargetPayment, Principal: 1000, Periods: 12, Interest: 10}
	b := a
	b.Interest = 10.5

	assert.Equal(t, Key("calc", a), Key("calc", a))
	assert.NotEqual(t, Key("calc", a), Key("calc", b))
	assert.NotEqual(t, Key("calc", a), Key("compare", a))
	assert.Contains(t, Key("calc", a), "calc:")
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 0)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v"))
	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Minute, 0)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v"))

	now = now.Add(30 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Empty(t, c.data)
}

func TestMemoryCacheSweepsUnreadEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Minute, 0)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "calc:a", "1"))
	require.NoError(t, c.Set(ctx, "calc:b", "2"))

	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "calc:c", "3"))

	assert.NotContains(t, c.data, "calc:a")
	assert.NotContains(t, c.data, "calc:b")
	assert.Contains(t, c.data, "calc:c")
}

func TestMemoryCacheMaxEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Hour, 2)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "first", "1"))
	now = now.Add(time.Second)
	require.NoError(t, c.Set(ctx, "second", "2"))
	now = now.Add(time.Second)
	require.NoError(t, c.Set(ctx, "third", "3"))

	assert.Len(t, c.data, 2)
	_, ok := c.Get(ctx, "first")
	assert.False(t, ok, "earliest-expiring entry is evicted")
	_, ok = c.Get(ctx, "third")
	assert.True(t, ok)

	// перезапись существующего ключа не вытесняет другие
	require.NoError(t, c.Set(ctx, "second", "22"))
	assert.Len(t, c.data, 2)
	got, ok := c.Get(ctx, "second")
	assert.True(t, ok)
	assert.Equal(t, "22", got)
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour, 8)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", "v")
			_, _ = c.Get(ctx, "k")
		}()
	}
	wg.Wait()

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Len(t, c.data, 1)
}

var _ Cache = (*MemoryCache)(nil)
var _ Cache = (*RedisCache)(nil)
