package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/documents/production"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// ProductionHandler serves the production ledger.
type ProductionHandler struct {
	*BaseHandler
	service *production.Service
}

// NewProductionHandler creates a new production handler.
func NewProductionHandler(base *BaseHandler, service *production.Service) *ProductionHandler {
	return &ProductionHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *ProductionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
}

// Record handles POST /production.
func (h *ProductionHandler) Record(c *gin.Context) {
	var req dto.CreateProductionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	batch, err := h.service.Record(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromProduction(batch))
}

// List handles GET /production.
func (h *ProductionHandler) List(c *gin.Context) {
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
		Items:      dto.FromProductions(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /production/:id.
func (h *ProductionHandler) Get(c *gin.Context) {
	batchID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	batch, err := h.service.GetByID(c.Request.Context(), batchID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduction(batch))
}

// Delete handles DELETE /production/:id.
func (h *ProductionHandler) Delete(c *gin.Context) {
	batchID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), batchID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
