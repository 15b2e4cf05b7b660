package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall/internal/inbox"
)

type createMessageRequest struct {
	Content     string `json:"content"`
	Sender      string `json:"sender"`
	ContactInfo string `json:"contact_info"`
}

// CreateMessage accepts a note for the teacher's inbox.
func (h *Handler) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	msg, err := h.inbox.Create(c.Request.Context(), req.Content, req.Sender, req.ContactInfo)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusCreated, msg)
}

// ListMessages returns every inbox message, newest first.
func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.inbox.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if msgs == nil {
		msgs = []inbox.Message{}
	}
	respondData(c, http.StatusOK, msgs)
}

// DeleteMessage removes one message by id.
func (h *Handler) DeleteMessage(c *gin.Context) {
	if err := h.inbox.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted_count": 1})
}
