package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed docs/openapi.json docs/openapi.html
var docsFS embed.FS

// OpenAPIHandler serves the API description and a browsable UI for it.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec answers GET /docs/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	spec, err := docsFS.ReadFile("docs/openapi.json")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, spec)
}

// ServeOpenAPIUI answers GET /docs.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := docsFS.ReadFile("docs/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
