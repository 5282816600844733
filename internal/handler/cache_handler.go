package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"filinglens/internal/export"
	"filinglens/internal/service"
)

// CacheHandler handles analysis cache endpoints.
type CacheHandler struct {
	cacheService service.CacheService
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(cacheService service.CacheService) *CacheHandler {
	return &CacheHandler{cacheService: cacheService}
}

// GetEntry handles GET /api/v1/cache/entry
// @Summary Get a cached analysis
// @Tags cache
// @Produce json
// @Param document_url query string true "Document content URL"
// @Success 200 {object} Response{data=domain.CachedEntry} "Cached entry"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "No live entry"
// @Security APIKeyAuth
// @Router /cache/entry [get]
func (h *CacheHandler) GetEntry(c *gin.Context) {
	entry, err := h.cacheService.Get(c.Request.Context(), c.Query("document_url"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}

// PutEntry handles PUT /api/v1/cache/entry
// @Summary Store an analysis in the cache
// @Tags cache
// @Accept json
// @Produce json
// @Param request body PutCacheEntryRequest true "Entry to store"
// @Success 200 {object} Response{data=domain.CachedEntry} "Stored entry"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Security APIKeyAuth
// @Router /cache/entry [put]
func (h *CacheHandler) PutEntry(c *gin.Context) {
	var req struct {
		DocumentURL string   `json:"document_url" binding:"required"`
		Summary     string   `json:"summary" binding:"required"`
		Insights    []string `json:"insights"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_url and summary are required")
		return
	}

	entry, err := h.cacheService.Put(c.Request.Context(), req.DocumentURL, req.Summary, req.Insights)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}

// Clear handles DELETE /api/v1/cache
// @Summary Remove every cached analysis
// @Tags cache
// @Produce json
// @Success 200 {object} Response{data=ClearCacheResponse} "Entries removed"
// @Security APIKeyAuth
// @Router /cache [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	n, err := h.cacheService.Clear(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"removed": n})
}

// Stats handles GET /api/v1/cache/stats
// @Summary Cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} Response{data=domain.CacheStats} "Live entry count and size in bytes"
// @Security APIKeyAuth
// @Router /cache/stats [get]
func (h *CacheHandler) Stats(c *gin.Context) {
	stats, err := h.cacheService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// Export handles GET /api/v1/cache/export
// @Summary Download cached analyses
// @Tags cache
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Security APIKeyAuth
// @Router /cache/export [get]
func (h *CacheHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", export.FormatCSV)
	if format != export.FormatCSV && format != export.FormatXLSX {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be 'csv' or 'xlsx'")
		return
	}

	var buf bytes.Buffer
	if err := h.cacheService.Export(c.Request.Context(), &buf, format); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("filing_analyses", format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}
