package handler

import (
	"github.com/gin-gonic/gin"

	"payvlo/internal/service"
)

// CompanyHandler manages the supplier profile.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles GET /api/v1/company
// @Summary Get company settings
// @Tags company
// @Produce json
// @Success 200 {object} Response{data=domain.CompanySettings}
// @Failure 409 {object} ErrorResponseBody "Company not configured"
// @Router /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, company)
}

// Save handles PUT /api/v1/company
// @Summary Create or replace company settings
// @Description PAN, state and state code are derived from the GSTIN.
// @Tags company
// @Accept json
// @Produce json
// @Param request body service.SaveCompanyInput true "Company settings"
// @Success 200 {object} Response{data=domain.CompanySettings}
// @Failure 400 {object} ErrorResponseBody
// @Router /company [put]
func (h *CompanyHandler) Save(c *gin.Context) {
	var req service.SaveCompanyInput
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.Save(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, company)
}
