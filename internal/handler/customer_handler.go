package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"payvlo/internal/service"
)

// CustomerHandler handles customer management endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
// @Summary Create a customer
// @Description B2B customers need a valid GSTIN; PAN and state are derived from it.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CreateCustomerInput true "Customer"
// @Success 201 {object} Response{data=domain.Customer}
// @Failure 400 {object} ErrorResponseBody
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerInput
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, customer)
}

// List handles GET /api/v1/customers
// @Summary List or search customers
// @Description With q, searches active customers by name, GSTIN, phone or e-mail.
// @Tags customers
// @Produce json
// @Param q query string false "Search text"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {object} Response{data=[]domain.Customer}
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		customers, err := h.customerService.Search(c.Request.Context(), q, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, customers, PagMeta{Total: len(customers), Offset: 0, Limit: limit})
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/customers/:id
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} Response{data=domain.Customer}
// @Failure 404 {object} ErrorResponseBody
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// Update handles PUT /api/v1/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body service.UpdateCustomerInput true "Fields to change"
// @Success 200 {object} Response{data=domain.Customer}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	var req service.UpdateCustomerInput
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id
// @Summary Delete a customer
// @Description Customers with invoices are deactivated instead of removed.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "customer deleted"})
}
