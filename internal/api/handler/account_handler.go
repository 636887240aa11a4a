package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// AccountHandler administration des comptes enseignants
type AccountHandler struct {
	accountSvc service.AccountService
}

// NewAccountHandler crée un AccountHandler
func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// List liste des comptes (admin)
// GET /api/v1/accounts
func (h *AccountHandler) List(c *gin.Context) {
	result, err := h.accountSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// SetReducedLoad bascule de la décharge administrative (admin)
// PUT /api/v1/accounts/:id/reduced-load
func (h *AccountHandler) SetReducedLoad(c *gin.Context) {
	accountID := c.Param("id")

	var req dto.SetReducedLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReducedLoad == nil {
		response.BadRequest(c, 10001, "reduced_load est obligatoire")
		return
	}

	result, err := h.accountSvc.SetReducedLoad(c.Request.Context(), accountID, *req.ReducedLoad)
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
