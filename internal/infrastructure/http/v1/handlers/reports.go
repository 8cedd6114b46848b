package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"kahawa/internal/core/apperror"
	"kahawa/internal/domain/reports"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves profitability reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Summary)
	rg.GET("/dashboard", h.Dashboard)
}

// Summary handles GET /reports/summary?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ReportsHandler) Summary(c *gin.Context) {
	from, err := dto.ParseDate(c.Query("from"), "from")
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dto.ParseDate(c.Query("to"), "to")
	if err != nil {
		h.Error(c, err)
		return
	}
	if from.IsZero() || to.IsZero() {
		h.Error(c, apperror.NewValidation("from and to dates are required"))
		return
	}

	period := reports.Period{
		From: from,
		To:   to.Add(24*time.Hour - time.Nanosecond), // inclusive end of day
	}

	summary, err := h.service.Summary(c.Request.Context(), period)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPeriodSummary(summary))
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDashboard(stats))
}
