package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/documents/sale"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves the sale ledger.
type SaleHandler struct {
	*BaseHandler
	service *sale.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
}

// Record handles POST /sales.
func (h *SaleHandler) Record(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	s, err := h.service.Record(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromSale(s))
}

// List handles GET /sales.
func (h *SaleHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromSales(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(s))
}

// Delete handles DELETE /sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), saleID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
