package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"filinglens/internal/service"
)

// DocumentHandler handles document retrieval and extraction endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type extractRequest struct {
	DocumentURL string `json:"document_url" form:"document_url" binding:"required"`
	ParseOnly   bool   `json:"parse_only" form:"parse_only"`
}

// Extract handles POST and GET /api/v1/documents/extract
// @Summary Fetch or extract a filing document
// @Description With parse_only=true returns the cleaned text of the document. Otherwise streams the original document as an attachment.
// @Tags documents
// @Accept json
// @Produce json,application/pdf,text/html,text/plain
// @Param request body ExtractRequest false "Document to extract (POST)"
// @Param document_url query string false "Document content URL (GET)"
// @Param parse_only query bool false "Return extracted text instead of the document (GET)"
// @Success 200 {object} Response{data=domain.ExtractionResult} "Extracted text"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Missing or invalid API key"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 422 {object} ErrorResponseBody "Text could not be extracted"
// @Failure 502 {object} ErrorResponseBody "Document service error"
// @Security APIKeyAuth
// @Router /documents/extract [post]
// @Router /documents/extract [get]
func (h *DocumentHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_url is required")
		return
	}

	if !req.ParseOnly {
		h.proxy(c, req.DocumentURL)
		return
	}

	result, err := h.documentService.ExtractText(c.Request.Context(), req.DocumentURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *DocumentHandler) proxy(c *gin.Context, documentURL string) {
	stream, err := h.documentService.Proxy(c.Request.Context(), documentURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer stream.Body.Close()

	c.DataFromReader(http.StatusOK, stream.ContentLength, stream.ContentType, stream.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, stream.Filename),
	})
}
