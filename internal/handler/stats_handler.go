package handler

import (
	"github.com/gin-gonic/gin"

	"payvlo/internal/service"
)

// StatsHandler handles stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Counts handles GET /api/v1/stats/counts
// @Summary Record counts
// @Description Number of customers, products and invoices on file.
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.RecordCounts} "Record counts"
// @Router /stats/counts [get]
func (h *StatsHandler) Counts(c *gin.Context) {
	counts, err := h.statsService.Counts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, counts)
}
