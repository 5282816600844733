package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filinglens/internal/domain"
	"filinglens/internal/service"
)

// AnalysisHandler handles filing analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Analyze handles POST /api/v1/filings/analyze
// @Summary Analyze a filing
// @Description Produces a summary, key insights and financial highlights for a filing. Model failures degrade to local analysis; the response is always well formed. Cached responses (cached=true) carry no figures: every financial highlight reads "Pending - requires analysis". Send use_cache=false to recompute them.
// @Tags filings
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Filing to analyze"
// @Success 200 {object} Response{data=domain.FilingAnalysis} "Analysis"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Missing or invalid API key"
// @Security APIKeyAuth
// @Router /filings/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req struct {
		Filing          domain.FilingRef `json:"filing"`
		DocumentContent string           `json:"document_content"`
		DocumentURL     string           `json:"document_url"`
		Network         *bool            `json:"network"`
		UseCache        *bool            `json:"use_cache"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "filing with a category is required")
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), &service.AnalyzeInput{
		Filing:          req.Filing,
		DocumentContent: req.DocumentContent,
		DocumentURL:     req.DocumentURL,
		Network:         boolOr(req.Network, true),
		UseCache:        boolOr(req.UseCache, true),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
