package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"payvlo/internal/service"
)

// ProductHandler handles product management endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/v1/products
// @Summary Create a product
// @Description The HSN/SAC code must suit the product type and the GST rate must be a valid slab.
// @Tags products
// @Accept json
// @Produce json
// @Param request body service.CreateProductInput true "Product"
// @Success 201 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductInput
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, product)
}

// List handles GET /api/v1/products
// @Summary List or search products
// @Description With q, searches active products by code, name or HSN/SAC code.
// @Tags products
// @Produce json
// @Param q query string false "Search text"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {object} Response{data=[]domain.Product}
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		products, err := h.productService.Search(c.Request.Context(), q, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, products, PagMeta{Total: len(products), Offset: 0, Limit: limit})
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 404 {object} ErrorResponseBody
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body service.UpdateProductInput true "Fields to change"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}
	var req service.UpdateProductInput
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Description Products are deactivated, never removed, so issued invoices keep their lines.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "product")
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "product deactivated"})
}
