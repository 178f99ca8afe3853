package handler

import (
	"github.com/dkovalenko/product-catalog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// Register mounts all public routes on the given engine.
// Products live at the root so the listing contract stays GET /products.
func Register(r *gin.Engine, repo Pinger, productSvc service.ProductService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	NewProductHandler(productSvc).Register(r)
}
