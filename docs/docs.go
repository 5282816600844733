// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/documents/extract": {
            "post": {
                "security": [{"APIKeyAuth": []}],
                "description": "With parse_only=true returns the cleaned text of the document. Otherwise streams the original document as an attachment.",
                "consumes": ["application/json"],
                "produces": ["application/json", "application/pdf", "text/html", "text/plain"],
                "tags": ["documents"],
                "summary": "Fetch or extract a filing document",
                "parameters": [
                    {"description": "Document to extract", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.ExtractRequest"}}
                ],
                "responses": {
                    "200": {"description": "Extracted text", "schema": {"$ref": "#/definitions/domain.ExtractionResult"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "401": {"description": "Missing or invalid API key", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Document not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Text could not be extracted", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Document service error", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "get": {
                "security": [{"APIKeyAuth": []}],
                "produces": ["application/json", "application/pdf", "text/html", "text/plain"],
                "tags": ["documents"],
                "summary": "Fetch or extract a filing document",
                "parameters": [
                    {"type": "string", "description": "Document content URL", "name": "document_url", "in": "query", "required": true},
                    {"type": "boolean", "description": "Return extracted text instead of the document", "name": "parse_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Extracted text", "schema": {"$ref": "#/definitions/domain.ExtractionResult"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/filings/analyze": {
            "post": {
                "security": [{"APIKeyAuth": []}],
                "description": "Produces a summary, key insights and financial highlights for a filing. Cached responses (cached=true) carry no figures: every financial highlight reads \"Pending - requires analysis\". Send use_cache=false to recompute them.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["filings"],
                "summary": "Analyze a filing",
                "parameters": [
                    {"description": "Filing to analyze", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Analysis", "schema": {"$ref": "#/definitions/domain.FilingAnalysis"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/cache": {
            "delete": {
                "security": [{"APIKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Remove every cached analysis",
                "responses": {
                    "200": {"description": "Entries removed", "schema": {"$ref": "#/definitions/handler.ClearCacheResponse"}}
                }
            }
        },
        "/cache/entry": {
            "get": {
                "security": [{"APIKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Get a cached analysis",
                "parameters": [
                    {"type": "string", "description": "Document content URL", "name": "document_url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Cached entry", "schema": {"$ref": "#/definitions/domain.CachedEntry"}},
                    "404": {"description": "No live entry", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "put": {
                "security": [{"APIKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Store an analysis in the cache",
                "parameters": [
                    {"description": "Entry to store", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PutCacheEntryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Stored entry", "schema": {"$ref": "#/definitions/domain.CachedEntry"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/cache/stats": {
            "get": {
                "security": [{"APIKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Cache statistics",
                "responses": {
                    "200": {"description": "Live entry count and size in bytes", "schema": {"$ref": "#/definitions/domain.CacheStats"}}
                }
            }
        },
        "/cache/export": {
            "get": {
                "security": [{"APIKeyAuth": []}],
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["cache"],
                "summary": "Download cached analyses",
                "parameters": [
                    {"type": "string", "description": "csv (default) or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Export file", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FilingRef": {
            "type": "object",
            "required": ["category"],
            "properties": {
                "category": {"type": "string", "example": "accounts"},
                "type": {"type": "string", "example": "AA"},
                "description": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-31"},
                "pages": {"type": "integer"},
                "barcode": {"type": "string"},
                "transaction_id": {"type": "string"},
                "paper_filed": {"type": "boolean"}
            }
        },
        "domain.ExtractionResult": {
            "type": "object",
            "properties": {
                "document_type": {"type": "string", "enum": ["PDF", "HTML", "TEXT"]},
                "content_length": {"type": "integer"},
                "extracted_text": {"type": "string"},
                "original_url": {"type": "string"},
                "placeholder": {"type": "boolean"}
            }
        },
        "domain.FilingAnalysis": {
            "type": "object",
            "properties": {
                "summary": {"type": "string"},
                "key_insights": {"type": "array", "items": {"type": "string"}},
                "financial_highlights": {"type": "object", "additionalProperties": {"type": "string"}},
                "filing_id": {"type": "string"},
                "filing_type": {"type": "string"},
                "filing_date": {"type": "string"},
                "analysis_tier": {"type": "string", "enum": ["content", "metadata", "enhanced"]},
                "model_used": {"type": "string"},
                "degraded": {"type": "boolean"},
                "cached": {"type": "boolean"}
            }
        },
        "domain.CachedEntry": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "summary": {"type": "string"},
                "insights": {"type": "array", "items": {"type": "string"}},
                "timestamp": {"type": "string"},
                "document_url": {"type": "string"}
            }
        },
        "domain.CacheStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "size": {"type": "integer"}
            }
        },
        "handler.ExtractRequest": {
            "type": "object",
            "required": ["document_url"],
            "properties": {
                "document_url": {"type": "string"},
                "parse_only": {"type": "boolean"}
            }
        },
        "handler.AnalyzeRequest": {
            "type": "object",
            "properties": {
                "filing": {"$ref": "#/definitions/domain.FilingRef"},
                "document_content": {"type": "string"},
                "document_url": {"type": "string"},
                "network": {"type": "boolean"},
                "use_cache": {"type": "boolean"}
            }
        },
        "handler.PutCacheEntryRequest": {
            "type": "object",
            "required": ["document_url", "summary"],
            "properties": {
                "document_url": {"type": "string"},
                "summary": {"type": "string"},
                "insights": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ClearCacheResponse": {
            "type": "object",
            "properties": {
                "removed": {"type": "integer"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/handler.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "APIKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FilingLens API",
	Description:      "Retrieves Companies House filing documents, extracts their text and produces summaries, key insights and financial highlights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
