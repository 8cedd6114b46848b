package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/registers/stock"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// StockHandler serves the stock reconciliation register.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Snapshot)
}

// Snapshot handles GET /stock. An optional asOf=YYYY-MM-DD query limits
// the aggregation to documents dated on or before that day.
func (h *StockHandler) Snapshot(c *gin.Context) {
	var asOf *time.Time
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := dto.ParseDate(raw, "asOf")
		if err != nil {
			h.Error(c, err)
			return
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		asOf = &endOfDay
	}

	overview, err := h.service.Snapshot(c.Request.Context(), asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockOverview(overview))
}
