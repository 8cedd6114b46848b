package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/documents/expense"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// ExpenseHandler serves the expense ledger.
type ExpenseHandler struct {
	*BaseHandler
	service *expense.Service
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(base *BaseHandler, service *expense.Service) *ExpenseHandler {
	return &ExpenseHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Record handles POST /expenses.
func (h *ExpenseHandler) Record(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	e, err := h.service.Record(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromExpense(e))
}

// List handles GET /expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
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
		Items:      dto.FromExpenses(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /expenses/:id.
func (h *ExpenseHandler) Get(c *gin.Context) {
	expenseID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), expenseID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpense(e))
}

// Update handles PATCH /expenses/:id.
func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	var req dto.UpdateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.Error(c, err)
		return
	}

	e, err := h.service.Update(c.Request.Context(), expenseID, patch)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpense(e))
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), expenseID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
