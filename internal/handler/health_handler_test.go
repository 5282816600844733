package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"filinglens/internal/handler"
	"filinglens/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockCacheService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	mockSvc := new(mocks.MockCacheService)
	h := handler.NewHealthHandler(mockSvc)
	mockSvc.On("Ping", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Readiness_StoreDown(t *testing.T) {
	mockSvc := new(mocks.MockCacheService)
	h := handler.NewHealthHandler(mockSvc)
	mockSvc.On("Ping", mock.Anything).Return(errors.New("database is locked"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
