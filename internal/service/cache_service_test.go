package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filinglens/internal/cache"
	"filinglens/internal/cache/memory"
	"filinglens/internal/domain"
	"filinglens/internal/export"
	"filinglens/internal/service"
)

func newCacheService(t *testing.T) service.CacheService {
	t.Helper()
	return service.NewCacheService(cache.New(memory.NewStore(), 0, zap.NewNop()))
}

func TestCacheService_PutGetStatsClear(t *testing.T) {
	svc := newCacheService(t)
	ctx := context.Background()

	_, err := svc.Put(ctx, docURL, "summary", []string{"a", "b"})
	require.NoError(t, err)

	entry, err := svc.Get(ctx, docURL)
	require.NoError(t, err)
	assert.Equal(t, "summary", entry.Summary)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	n, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, docURL)
	assert.ErrorIs(t, err, domain.ErrCacheEntryNotFound)
	assert.NoError(t, svc.Ping(ctx))
}

func TestCacheService_PutValidation(t *testing.T) {
	svc := newCacheService(t)

	_, err := svc.Put(context.Background(), docURL, " ", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestCacheService_ExportCSV(t *testing.T) {
	svc := newCacheService(t)
	ctx := context.Background()
	_, err := svc.Put(ctx, docURL, "summary", []string{"a"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf, export.FormatCSV))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), export.BOM))
	assert.Contains(t, buf.String(), "Document URL,Summary")
	assert.Contains(t, buf.String(), docURL)
}

func TestCacheService_ExportXLSX(t *testing.T) {
	svc := newCacheService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf, export.FormatXLSX))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

func TestCacheService_ExportUnknownFormat(t *testing.T) {
	svc := newCacheService(t)

	err := svc.Export(context.Background(), &bytes.Buffer{}, "pdf")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
