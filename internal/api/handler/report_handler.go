package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// ReportHandler comptes rendus de séance
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler crée un ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Submit soumission d'un compte rendu : validation, archivage, remise.
// Un refus de validation répond 422 avec le champ en cause ; un échec de
// remise répond 200 avec une notice (le compte rendu reste archivé).
// POST /api/v1/reports
func (h *ReportHandler) Submit(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.reportSvc.Submit(c.Request.Context(), accountID, &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			code := 13001
			if verr.Kind == service.KindInvalidAbsenteeSelection {
				code = 13002
			}
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, code, verr.Error(), verr.Field)
			return
		}
		if errors.Is(err, service.ErrAccountNotFound) {
			response.NotFound(c, 12001, "compte introuvable")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListMine comptes rendus archivés du compte connecté
// GET /api/v1/reports/me
func (h *ReportHandler) ListMine(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.reportSvc.ListMine(c.Request.Context(), accountID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
