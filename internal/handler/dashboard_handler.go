package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type dashboardService interface {
	Admin(ctx context.Context) (*models.AdminDashboard, error)
	Warden(ctx context.Context) (*models.WardenDashboard, error)
}

type metricsSnapshotter interface {
	Snapshot() models.SystemMetrics
}

// DashboardHandler exposes composed per-role summaries.
type DashboardHandler struct {
	service dashboardService
	metrics metricsSnapshotter
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, metrics metricsSnapshotter) *DashboardHandler {
	return &DashboardHandler{service: service, metrics: metrics}
}

// Admin godoc
// @Summary Admin dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	dashboard, err := h.service.Admin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Warden godoc
// @Summary Warden work queue summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/warden [get]
func (h *DashboardHandler) Warden(c *gin.Context) {
	dashboard, err := h.service.Warden(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Metrics godoc
// @Summary System metrics snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		response.JSON(c, http.StatusOK, models.SystemMetrics{}, nil)
		return
	}
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), nil)
}
