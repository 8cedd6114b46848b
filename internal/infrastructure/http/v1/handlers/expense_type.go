package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/catalogs/expensetype"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// ExpenseTypeHandler serves the expense type catalog.
type ExpenseTypeHandler struct {
	*BaseHandler
	service *expensetype.Service
}

// NewExpenseTypeHandler creates a new expense type handler.
func NewExpenseTypeHandler(base *BaseHandler, service *expensetype.Service) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *ExpenseTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Deactivate)
}

// Create handles POST /expense-types.
func (h *ExpenseTypeHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromExpenseType(t))
}

// List handles GET /expense-types.
func (h *ExpenseTypeHandler) List(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	types, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromExpenseTypes(types),
		TotalCount: int64(len(types)),
	})
}

// Get handles GET /expense-types/:id.
func (h *ExpenseTypeHandler) Get(c *gin.Context) {
	typeID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), typeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpenseType(t))
}

// Update handles PATCH /expense-types/:id.
func (h *ExpenseTypeHandler) Update(c *gin.Context) {
	typeID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	var req dto.UpdateExpenseTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := h.service.Update(c.Request.Context(), typeID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpenseType(t))
}

// Deactivate handles DELETE /expense-types/:id (soft delete).
func (h *ExpenseTypeHandler) Deactivate(c *gin.Context) {
	typeID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), typeID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
