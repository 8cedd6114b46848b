package handlers

import (
	"github.com/gin-gonic/gin"

	"kahawa/internal/infrastructure/http/v1/dto"
	"kahawa/internal/infrastructure/storage/postgres"
)

// AuditHandler exposes the ledger audit trail.
type AuditHandler struct {
	*BaseHandler
	audit *postgres.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, audit *postgres.AuditService) *AuditHandler {
	return &AuditHandler{BaseHandler: base, audit: audit}
}

// RegisterRoutes wires the handler into a route group.
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:entityType/:id", h.History)
}

// History handles GET /audit/:entityType/:id.
func (h *AuditHandler) History(c *gin.Context) {
	entityID, err := dto.ParseID(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)

	entries, err := h.audit.GetEntityHistory(c.Request.Context(), c.Param("entityType"), entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": entries, "totalCount": len(entries)})
}
