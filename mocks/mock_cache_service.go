package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"filinglens/internal/domain"
)

// MockCacheService is a mock implementation of service.CacheService.
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Get(ctx context.Context, documentURL string) (*domain.CachedEntry, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedEntry), args.Error(1)
}

func (m *MockCacheService) Put(ctx context.Context, documentURL, summary string, insights []string) (*domain.CachedEntry, error) {
	args := m.Called(ctx, documentURL, summary, insights)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedEntry), args.Error(1)
}

func (m *MockCacheService) Clear(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCacheService) Stats(ctx context.Context) (*domain.CacheStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CacheStats), args.Error(1)
}

func (m *MockCacheService) Export(ctx context.Context, w io.Writer, format string) error {
	args := m.Called(ctx, w, format)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
