package handler

import (
	"net/http"
	"strconv"

	"github.com/dkovalenko/product-catalog-service/internal/pagination"
	"github.com/dkovalenko/product-catalog-service/internal/service"
	"github.com/dkovalenko/product-catalog-service/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Register(r gin.IRouter) {
	r.GET("/products", h.list)
	r.POST("/products", h.create)
}

// list serves GET /products?page=&size=&sort=field,DIR.
// Omitted parameters fall back to page 0 and the default size; explicitly
// malformed ones are a client error, never silently corrected.
func (h *ProductHandler) list(c *gin.Context) {
	// Defaults for omitted parameters; explicit values, however wrong,
	// are forwarded untouched so validation can reject them.
	req := pagination.Request{Number: 0, Size: pagination.DefaultSize}

	if raw, ok := c.GetQuery("page"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(c, service.NewInvalidInput(service.FieldError{Field: "page", Message: "must be an integer"}))
			return
		}
		req.Number = n
	}
	if raw, ok := c.GetQuery("size"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(c, service.NewInvalidInput(service.FieldError{Field: "size", Message: "must be an integer"}))
			return
		}
		req.Size = n
	}
	req.Sort = service.ParseSort(c.Query("sort"))

	page, err := h.svc.ListProducts(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

type createProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (h *ProductHandler) create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // body parse details stay internal
		return
	}
	product, err := h.svc.CreateProduct(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, product)
}
