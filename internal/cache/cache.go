// Package cache keeps previously computed filing analyses keyed by document URL.
package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"filinglens/internal/domain"
	"filinglens/internal/port"
)

const (
	// KeyPrefix namespaces analysis entries within a store.
	KeyPrefix = "ai_summary_"
	// DefaultTTL is how long an entry stays valid.
	DefaultTTL = 30 * 24 * time.Hour
)

// Key derives the store key for a document URL: the prefix followed by the
// base64 encoding of the URL with non-alphanumeric characters removed.
func Key(documentURL string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(documentURL))
	return KeyPrefix + strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return -1
	}, enc)
}

// Option configures a ResultCache.
type Option func(*ResultCache)

// WithClock overrides the time source used for timestamps and expiry.
func WithClock(now func() time.Time) Option {
	return func(c *ResultCache) { c.now = now }
}

// ResultCache applies expiry on top of a CacheStore. Expired entries are evicted
// when read.
type ResultCache struct {
	store  port.CacheStore
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// New creates a ResultCache. A non-positive ttl selects DefaultTTL.
func New(store port.CacheStore, ttl time.Duration, logger *zap.Logger, opts ...Option) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &ResultCache{store: store, ttl: ttl, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ResultCache) expired(e *domain.CachedEntry) bool {
	return c.now().After(e.Timestamp.Add(c.ttl))
}

// Get returns the live entry for documentURL, or domain.ErrCacheEntryNotFound.
func (c *ResultCache) Get(ctx context.Context, documentURL string) (*domain.CachedEntry, error) {
	key := Key(documentURL)
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if c.expired(entry) {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("failed to evict expired cache entry", zap.String("key", key), zap.Error(err))
		}
		return nil, domain.ErrCacheEntryNotFound
	}
	return entry, nil
}

// Has reports whether a live entry exists for documentURL.
func (c *ResultCache) Has(ctx context.Context, documentURL string) (bool, error) {
	_, err := c.Get(ctx, documentURL)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrCacheEntryNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Set stores a summary and its insights for documentURL, replacing any previous entry.
func (c *ResultCache) Set(ctx context.Context, documentURL, summary string, insights []string) (*domain.CachedEntry, error) {
	entry := &domain.CachedEntry{
		Key:         Key(documentURL),
		Summary:     summary,
		Insights:    insights,
		Timestamp:   c.now().UTC().Truncate(time.Millisecond),
		DocumentURL: documentURL,
	}
	if err := c.store.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("storing cache entry: %w", err)
	}
	return entry, nil
}

// Clear removes every analysis entry and returns how many were removed.
func (c *ResultCache) Clear(ctx context.Context) (int, error) {
	n, err := c.store.DeletePrefix(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	c.logger.Info("analysis cache cleared", zap.Int("removed", n))
	return n, nil
}

// List returns every live entry.
func (c *ResultCache) List(ctx context.Context) ([]domain.CachedEntry, error) {
	entries, err := c.store.List(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing cache entries: %w", err)
	}
	live := entries[:0]
	for i := range entries {
		if !c.expired(&entries[i]) {
			live = append(live, entries[i])
		}
	}
	return live, nil
}

// Stats counts live entries and their serialized size in bytes.
func (c *ResultCache) Stats(ctx context.Context) (*domain.CacheStats, error) {
	entries, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.CacheStats{Total: len(entries)}
	for i := range entries {
		b, err := json.Marshal(&entries[i])
		if err != nil {
			return nil, fmt.Errorf("sizing cache entry: %w", err)
		}
		stats.Size += int64(len(b))
	}
	return stats, nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *ResultCache) Prune(ctx context.Context) (int, error) {
	entries, err := c.store.List(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("listing cache entries: %w", err)
	}
	removed := 0
	for i := range entries {
		if !c.expired(&entries[i]) {
			continue
		}
		if err := c.store.Delete(ctx, entries[i].Key); err != nil {
			return removed, fmt.Errorf("pruning cache entry: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Ping checks that the underlying store is reachable.
func (c *ResultCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
