package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall/internal/attendance"
)

type createStudentRequest struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	IsPresent *bool  `json:"is_present"`
}

type updateAttendanceRequest struct {
	IsPresent *bool `json:"is_present"`
}

// CreateStudent adds a student to a day's roster. New entries always start
// absent; a client-sent is_present is ignored.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	rec, err := h.attendance.Create(c.Request.Context(), req.Name, req.Date)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusCreated, rec)
}

// ListStudents returns the roster for one date.
func (h *Handler) ListStudents(c *gin.Context) {
	recs, err := h.attendance.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if recs == nil {
		recs = []attendance.Record{}
	}
	respondData(c, http.StatusOK, recs)
}

// UpdateAttendance marks a student present or absent for a date.
func (h *Handler) UpdateAttendance(c *gin.Context) {
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsPresent == nil {
		respondError(c, http.StatusBadRequest, "is_present is required")
		return
	}
	rec, err := h.attendance.SetPresence(c.Request.Context(), c.Param("name"), c.Param("date"), *req.IsPresent)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusOK, rec)
}

// ClearStudents wipes every record across all dates.
func (h *Handler) ClearStudents(c *gin.Context) {
	n, err := h.attendance.ClearAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted_count": n})
}
