package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rollcall/internal/announcement"
	"rollcall/internal/identity"
)

type createAnnouncementRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// CreateAnnouncement posts a notice to the board. When the body names no
// author, the verified name from the bearer token is used instead.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = identity.ActorName(c)
	}
	ann, err := h.announcements.Create(c.Request.Context(), req.Content, author)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusCreated, ann)
}

// ListAnnouncements returns every notice, newest first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	anns, err := h.announcements.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if anns == nil {
		anns = []announcement.Announcement{}
	}
	respondData(c, http.StatusOK, anns)
}

// ClearAnnouncements wipes the board.
func (h *Handler) ClearAnnouncements(c *gin.Context) {
	n, err := h.announcements.ClearAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted_count": n})
}
