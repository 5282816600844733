package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"filinglens/internal/config"
	"filinglens/internal/domain"
	"filinglens/internal/handler"
	"filinglens/internal/middleware"
	"filinglens/internal/router"
	"filinglens/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(apiKey string) (*gin.Engine, *mocks.MockCacheService) {
	cfg := &config.Config{
		Server: config.ServerConfig{APIKey: apiKey},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	cacheSvc := new(mocks.MockCacheService)
	r := router.Setup(cfg, zap.NewNop(),
		handler.NewDocumentHandler(new(mocks.MockDocumentService)),
		handler.NewAnalysisHandler(new(mocks.MockAnalysisService)),
		handler.NewCacheHandler(cacheSvc),
		handler.NewHealthHandler(cacheSvc),
	)
	return r, cacheSvc
}

func TestRouter_Healthz(t *testing.T) {
	r, _ := setup("secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_APIKeyRequired(t *testing.T) {
	r, _ := setup("secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", http.NoBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CacheStatsWithKey(t *testing.T) {
	r, cacheSvc := setup("secret")
	cacheSvc.On("Stats", mock.Anything).Return(&domain.CacheStats{Total: 1, Size: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", http.NoBody)
	req.Header.Set(middleware.APIKeyHeader, "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cacheSvc.AssertExpectations(t)
}

func TestRouter_ClearCache(t *testing.T) {
	r, cacheSvc := setup("")
	cacheSvc.On("Clear", mock.Anything).Return(0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/cache", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	cacheSvc.AssertExpectations(t)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := setup("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
