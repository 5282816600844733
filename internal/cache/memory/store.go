// Package memory is an in-process CacheStore.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"filinglens/internal/domain"
)

// Store keeps cache entries in a map. The zero value is not usable; call NewStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.CachedEntry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]domain.CachedEntry)}
}

func (s *Store) Get(_ context.Context, key string) (*domain.CachedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, domain.ErrCacheEntryNotFound
	}
	e.Insights = append([]string(nil), e.Insights...)
	return &e, nil
}

func (s *Store) Put(_ context.Context, entry *domain.CachedEntry) error {
	e := *entry
	e.Insights = append([]string(nil), entry.Insights...)
	s.mu.Lock()
	s.entries[e.Key] = e
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}

// List returns matching entries oldest first.
func (s *Store) List(_ context.Context, prefix string) ([]domain.CachedEntry, error) {
	s.mu.RLock()
	out := make([]domain.CachedEntry, 0, len(s.entries))
	for k, e := range s.entries {
		if strings.HasPrefix(k, prefix) {
			e.Insights = append([]string(nil), e.Insights...)
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Key < out[j].Key
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}
