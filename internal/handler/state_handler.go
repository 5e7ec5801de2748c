package handler

import (
	"github.com/gin-gonic/gin"

	"payvlo/internal/service"
)

// StateHandler serves the GST state code table.
type StateHandler struct {
	stateService service.StateService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(stateService service.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// List handles GET /api/v1/states
// @Summary List states and union territories
// @Tags states
// @Produce json
// @Success 200 {object} Response{data=[]domain.IndianState}
// @Router /states [get]
func (h *StateHandler) List(c *gin.Context) {
	states, err := h.stateService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, states)
}

// GetByCode handles GET /api/v1/states/:code
// @Summary Get a state by GST state code
// @Tags states
// @Produce json
// @Param code path string true "Two-digit state code"
// @Success 200 {object} Response{data=domain.IndianState}
// @Failure 404 {object} ErrorResponseBody
// @Router /states/{code} [get]
func (h *StateHandler) GetByCode(c *gin.Context) {
	state, err := h.stateService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}
