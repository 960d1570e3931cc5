package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// GetDashboard godoc
// @Summary Get the dashboard summary
// @Description Get the tenant's headline counts and totals
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetDashboard(ctx)
	if err != nil {
		h.log.Error("Failed to build dashboard", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
