package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Summary())
}
