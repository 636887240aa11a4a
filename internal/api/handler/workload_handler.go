package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// WorkloadHandler module de calcul de charge
type WorkloadHandler struct {
	workloadSvc service.WorkloadService
}

// NewWorkloadHandler crée un WorkloadHandler
func NewWorkloadHandler(workloadSvc service.WorkloadService) *WorkloadHandler {
	return &WorkloadHandler{workloadSvc: workloadSvc}
}

// MyWorkload synthèse de charge et grille hebdomadaire du compte connecté
// GET /api/v1/workload/me
func (h *WorkloadHandler) MyWorkload(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.workloadSvc.MyWorkload(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.NotFound(c, 12001, "compte introuvable")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Overview vue d'ensemble des charges du département (admin)
// GET /api/v1/workload
func (h *WorkloadHandler) Overview(c *gin.Context) {
	result, err := h.workloadSvc.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
