package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/domain/catalogs/category"
	"kahawa/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the piece category catalog.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires the handler into a route group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Deactivate)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromCategory(cat))
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	cats, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromCategories(cats),
		TotalCount: int64(len(cats)),
	})
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	catID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), catID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategory(cat))
}

// Update handles PATCH /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	catID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.Update(c.Request.Context(), catID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategory(cat))
}

// Deactivate handles DELETE /categories/:id (soft delete).
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	catID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), catID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
