package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"slotwise/internal/csvexport"
	"slotwise/internal/domain"
	"slotwise/internal/engine"
	"slotwise/internal/service"
)

// ImportHandler exposes the grid import pipeline: upload and parse, review
// the extracted slots, and commit to the store.
type ImportHandler struct {
	svc service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(svc service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Upload accepts a multipart workbook plus a semester, runs the extraction
// engine, and returns the review session.
func (h *ImportHandler) Upload(c *gin.Context) {
	semester := strings.TrimSpace(c.PostForm("semester"))
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" && ext != ".xlsm" {
		HandleError(c, domain.ErrUnsupportedFile)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open uploaded file")
		return
	}
	defer f.Close()

	workbook, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	session, err := h.svc.Parse(c.Request.Context(), semester, fileHeader.Filename, workbook)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Get returns the full review session.
func (h *ImportHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, session)
}

// Diagnostics returns the per-line parse audit trail.
func (h *ImportHandler) Diagnostics(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, session.Diagnostics)
}

// CrossCheck returns the credit-structure reconciliation report.
func (h *ImportHandler) CrossCheck(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, session.CrossCheck)
}

// ExportCrossCheck streams the session's reconciliation report as a CSV
// attachment.
func (h *ImportHandler) ExportCrossCheck(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "crosscheck-"+session.ID.String()+".csv"))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteCrossCheckHeader(); err != nil {
		return
	}
	if err := w.WriteCrossCheck(session.CrossCheck); err != nil {
		return
	}
	w.Flush()
}

// UpdateSlots replaces the session's slot list with the reviewer's edits.
func (h *ImportHandler) UpdateSlots(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var slots []engine.ExtractedSlot
	if err := c.ShouldBindJSON(&slots); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "body must be a JSON array of slots")
		return
	}

	session, err := h.svc.UpdateSlots(id, slots)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Commit resolves the reviewed slots and replaces the semester's schedule.
func (h *ImportHandler) Commit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.svc.Commit(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *ImportHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ImportHandler) session(c *gin.Context) (*service.ImportSession, bool) {
	id, ok := h.sessionID(c)
	if !ok {
		return nil, false
	}
	session, err := h.svc.Get(id)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return session, true
}
