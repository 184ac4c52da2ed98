package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotwise/internal/csvexport"
	"slotwise/internal/domain"
	"slotwise/internal/port"
	"slotwise/internal/service"
)

// ScheduleHandler exposes committed schedule queries and CSV export.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) filter(c *gin.Context) (string, port.ScheduleFilter) {
	return c.Query("semester"), port.ScheduleFilter{
		Section: c.Query("section"),
		Day:     domain.DayOfWeek(c.Query("day")),
	}
}

// List returns committed schedule entries for a semester, optionally
// filtered by section and day.
func (h *ScheduleHandler) List(c *gin.Context) {
	semester, filter := h.filter(c)
	entries, err := h.svc.List(c.Request.Context(), semester, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// Export streams the semester's schedule as a CSV attachment.
func (h *ScheduleHandler) Export(c *gin.Context) {
	semester, filter := h.filter(c)
	entries, err := h.svc.List(c.Request.Context(), semester, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "schedule-"+semester+".csv"))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteScheduleHeader(); err != nil {
		return
	}
	if err := w.WriteSchedule(entries); err != nil {
		return
	}
	w.Flush()
}

// ImportRuns returns the semester's import audit trail.
func (h *ScheduleHandler) ImportRuns(c *gin.Context) {
	runs, err := h.svc.ImportRuns(c.Request.Context(), c.Query("semester"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, runs)
}
