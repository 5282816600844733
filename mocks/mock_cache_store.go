package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filinglens/internal/domain"
)

// MockCacheStore is a mock implementation of port.CacheStore.
type MockCacheStore struct {
	mock.Mock
}

func (m *MockCacheStore) Get(ctx context.Context, key string) (*domain.CachedEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedEntry), args.Error(1)
}

func (m *MockCacheStore) Put(ctx context.Context, entry *domain.CachedEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCacheStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockCacheStore) List(ctx context.Context, prefix string) ([]domain.CachedEntry, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CachedEntry), args.Error(1)
}

func (m *MockCacheStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
