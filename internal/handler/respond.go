package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rollcall/internal/httpmiddleware"
	"rollcall/internal/store"
)

// envelope is the shape of every API response except /health.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, envelope{Status: "success", Data: data})
}

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, envelope{Status: "error", Error: msg})
}

// fail maps a service error to a status code. Outcome errors carry their
// message to the client; anything else is logged and hidden behind a 500
// so store internals never leak.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", httpmiddleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("storage failure")
		respondError(c, http.StatusInternalServerError, "storage unavailable")
	}
}
