package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Single-page Swagger UI shell, loaded from a CDN and pointed at
// /openapi.yaml. Embedding just this file keeps the binary free of
// bundled doc assets.
//
//go:embed swagger.html
var swaggerHTML string

// RegisterDocs exposes the catalog API documentation:
//   - GET /openapi.yaml: the raw spec, read from api/openapi.yaml in the
//     working directory so edits show up without a rebuild
//   - GET /docs: Swagger UI rendering of that spec
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		data, err := os.ReadFile("api/openapi.yaml")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to read openapi spec: %v", err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
