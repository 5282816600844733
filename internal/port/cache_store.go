package port

import (
	"context"

	"filinglens/internal/domain"
)

// CacheStore persists cached analyses by key. Stores do not apply expiry;
// the result cache decides what is stale.
type CacheStore interface {
	Get(ctx context.Context, key string) (*domain.CachedEntry, error)
	Put(ctx context.Context, entry *domain.CachedEntry) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	List(ctx context.Context, prefix string) ([]domain.CachedEntry, error)
	Ping(ctx context.Context) error
}
