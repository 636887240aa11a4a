package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar"
)

// ExportHandler exports de la fiche de service et de l'EDT
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crée un ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// WorkloadSheet fiche de service Excel du compte connecté
// GET /api/v1/export/workload.xlsx
func (h *ExportHandler) WorkloadSheet(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.WorkloadSheet(c.Request.Context(), accountID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

// TimetableICS EDT hebdomadaire iCalendar du compte connecté
// GET /api/v1/export/timetable.ics
func (h *ExportHandler) TimetableICS(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.TimetableICS(c.Request.Context(), accountID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoSessions):
		response.NotFound(c, 16101, "aucune séance dans l'EDT pour ce compte")
	case errors.Is(err, service.ErrAccountNotFound):
		response.NotFound(c, 12001, "compte introuvable")
	default:
		response.InternalError(c)
	}
}

func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, data)
}
