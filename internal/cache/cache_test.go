package cache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filinglens/internal/cache"
	"filinglens/internal/cache/memory"
	"filinglens/internal/domain"
	"filinglens/mocks"
)

const docURL = "https://document-api.company-information.service.gov.uk/document/abc123/content"

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newCache(clock *fakeClock) *cache.ResultCache {
	return cache.New(memory.NewStore(), cache.DefaultTTL, zap.NewNop(), cache.WithClock(clock.now))
}

func TestKey(t *testing.T) {
	key := cache.Key(docURL)

	assert.True(t, strings.HasPrefix(key, cache.KeyPrefix))
	rest := strings.TrimPrefix(key, cache.KeyPrefix)
	assert.NotEmpty(t, rest)
	for _, r := range rest {
		assert.True(t, ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'), "unexpected %q", r)
	}
	assert.Equal(t, key, cache.Key(docURL))
	assert.NotEqual(t, key, cache.Key(docURL+"?x=1"))
}

func TestSetGet_RoundTrip(t *testing.T) {
	before := time.Now()
	c := cache.New(memory.NewStore(), 0, zap.NewNop())
	ctx := context.Background()

	_, err := c.Set(ctx, docURL, "A summary", []string{"one", "two"})
	require.NoError(t, err)

	got, err := c.Get(ctx, docURL)
	require.NoError(t, err)
	assert.Equal(t, "A summary", got.Summary)
	assert.Equal(t, []string{"one", "two"}, got.Insights)
	assert.Equal(t, docURL, got.DocumentURL)
	assert.WithinDuration(t, before, got.Timestamp, time.Second)
	assert.False(t, got.Timestamp.After(time.Now()))
}

func TestGet_Missing(t *testing.T) {
	c := newCache(&fakeClock{t: time.Now()})

	_, err := c.Get(context.Background(), docURL)

	assert.ErrorIs(t, err, domain.ErrCacheEntryNotFound)
}

func TestGet_ExpiredEntryIsEvicted(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := newCache(clock)
	ctx := context.Background()

	_, err := c.Set(ctx, docURL, "s", []string{"i"})
	require.NoError(t, err)

	clock.t = clock.t.Add(30 * 24 * time.Hour)
	ok, err := c.Has(ctx, docURL)
	require.NoError(t, err)
	assert.True(t, ok, "entry is still valid exactly at the expiry boundary")

	clock.t = clock.t.Add(time.Millisecond)
	_, err = c.Get(ctx, docURL)
	assert.ErrorIs(t, err, domain.ErrCacheEntryNotFound)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestStats(t *testing.T) {
	c := newCache(&fakeClock{t: time.Now()})
	ctx := context.Background()

	_, err := c.Set(ctx, docURL, "first", []string{"a"})
	require.NoError(t, err)
	_, err = c.Set(ctx, docURL+"2", "second", []string{"b", "c"})
	require.NoError(t, err)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Greater(t, stats.Size, int64(0))
}

func TestClear(t *testing.T) {
	c := newCache(&fakeClock{t: time.Now()})
	ctx := context.Background()

	_, err := c.Set(ctx, docURL, "s", nil)
	require.NoError(t, err)

	n, err := c.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err := c.Has(ctx, docURL)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrune(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newCache(clock)
	ctx := context.Background()

	_, err := c.Set(ctx, docURL, "old", nil)
	require.NoError(t, err)
	clock.t = clock.t.Add(20 * 24 * time.Hour)
	_, err = c.Set(ctx, docURL+"new", "new", nil)
	require.NoError(t, err)
	clock.t = clock.t.Add(15 * 24 * time.Hour)

	n, err := c.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Summary)
}

func TestSet_StoreError(t *testing.T) {
	store := new(mocks.MockCacheStore)
	store.On("Put", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	c := cache.New(store, 0, zap.NewNop())

	_, err := c.Set(context.Background(), docURL, "s", nil)

	assert.ErrorContains(t, err, "disk full")
	store.AssertExpectations(t)
}

func TestHas_PropagatesStoreError(t *testing.T) {
	store := new(mocks.MockCacheStore)
	store.On("Get", mock.Anything, cache.Key(docURL)).Return(nil, errors.New("locked"))
	c := cache.New(store, 0, zap.NewNop())

	ok, err := c.Has(context.Background(), docURL)

	assert.False(t, ok)
	assert.ErrorContains(t, err, "locked")
}
