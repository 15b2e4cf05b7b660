package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and database reachability. Unlike the API
// endpoints it answers bare JSON, so probes stay trivial to parse.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, dbState, code := "healthy", "connected", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, dbState, code = "unhealthy", "disconnected", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbState,
		"timestamp": time.Now().UTC(),
	})
}
