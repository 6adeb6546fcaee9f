package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the admin overview and the notification feed
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the admin overview
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard retrieved successfully", dashboard)
}

// Notifications returns the admin notification feed
func (h *DashboardHandler) Notifications(c *gin.Context) {
	feed, err := h.dashboardService.GetNotifications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Notifications retrieved successfully", feed)
}
