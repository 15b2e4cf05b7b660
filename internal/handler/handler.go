package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"rollcall/internal/announcement"
	"rollcall/internal/attendance"
	"rollcall/internal/inbox"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler exposes the services over HTTP.
type Handler struct {
	attendance    *attendance.Service
	announcements *announcement.Service
	inbox         *inbox.Service
	db            Pinger
}

// New creates a handler over the given services.
func New(att *attendance.Service, ann *announcement.Service, inb *inbox.Service, db Pinger) *Handler {
	return &Handler{
		attendance:    att,
		announcements: ann,
		inbox:         inb,
		db:            db,
	}
}

// Routes mounts every endpoint on the router.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/students/:date", h.ListStudents)
	r.POST("/students", h.CreateStudent)
	r.PUT("/students/:name/:date", h.UpdateAttendance)
	r.DELETE("/students", h.ClearStudents)

	r.GET("/announcements", h.ListAnnouncements)
	r.POST("/announcements", h.CreateAnnouncement)
	r.DELETE("/announcements", h.ClearAnnouncements)

	r.GET("/student-messages", h.ListMessages)
	r.POST("/student-messages", h.CreateMessage)
	r.DELETE("/student-messages/:id", h.DeleteMessage)
}
