package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"kahawa/internal/core/apperror"
	"kahawa/internal/infrastructure/storage/postgres"
)

// HeartbeatHandler serves the keep-alive endpoint hit by external
// schedulers to prevent the hosting platform from idling the service.
type HeartbeatHandler struct {
	*BaseHandler
	store  *postgres.HeartbeatStore
	secret string
}

// NewHeartbeatHandler creates a new heartbeat handler.
func NewHeartbeatHandler(base *BaseHandler, store *postgres.HeartbeatStore, secret string) *HeartbeatHandler {
	return &HeartbeatHandler{BaseHandler: base, store: store, secret: secret}
}

// RegisterRoutes wires the handler into a route group. GET mirrors POST
// for cron services and manual checks that cannot send a body.
func (h *HeartbeatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/heartbeat", h.Ping)
	rg.GET("/heartbeat", h.Ping)
}

// authorized checks the shared secret from the Authorization bearer
// header or the secret query param. An unset secret rejects everything.
func (h *HeartbeatHandler) authorized(c *gin.Context) bool {
	if h.secret == "" {
		return false
	}

	presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if presented == "" || presented == c.GetHeader("Authorization") {
		presented = c.Query("secret")
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.secret)) == 1
}

// Ping handles the keep-alive request.
// The shared secret keeps random crawlers from filling the log.
func (h *HeartbeatHandler) Ping(c *gin.Context) {
	if !h.authorized(c) {
		h.Error(c, apperror.NewUnauthorized("invalid heartbeat secret"))
		return
	}

	source := c.Query("source")
	if source == "" {
		source = "external"
	}

	entry, err := h.store.Record(c.Request.Context(), source)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, entry)
}
