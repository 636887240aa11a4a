package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// CatalogHandler consultation de l'EDT et des listes étudiants
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler crée un CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAccountNotFound) {
		response.NotFound(c, 12001, "compte introuvable")
		return
	}
	response.InternalError(c)
}

// MyTimetable lignes d'EDT de l'enseignant connecté
// GET /api/v1/timetable/me
func (h *CatalogHandler) MyTimetable(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.catalogSvc.MyTimetable(c.Request.Context(), accountID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// Subjects enseignements du compte connecté pour une promotion
// GET /api/v1/timetable/subjects?promotion=xxx
func (h *CatalogHandler) Subjects(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}
	promotion := c.Query("promotion")
	if promotion == "" {
		response.BadRequest(c, 10001, "promotion est obligatoire")
		return
	}

	result, err := h.catalogSvc.Subjects(c.Request.Context(), accountID, promotion)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// Promotions promotions où le compte connecté intervient
// GET /api/v1/timetable/promotions
func (h *CatalogHandler) Promotions(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.catalogSvc.Promotions(c.Request.Context(), accountID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// Students étudiants d'un sous-groupe
// GET /api/v1/roster/students?promotion=&group=&subgroup=
func (h *CatalogHandler) Students(c *gin.Context) {
	promotion := c.Query("promotion")
	group := c.Query("group")
	subgroup := c.Query("subgroup")
	if promotion == "" || group == "" || subgroup == "" {
		response.BadRequest(c, 10001, "promotion, group et subgroup sont obligatoires")
		return
	}

	response.OK(c, h.catalogSvc.Students(promotion, group, subgroup))
}

// Groups groupes d'une promotion
// GET /api/v1/roster/groups?promotion=xxx
func (h *CatalogHandler) Groups(c *gin.Context) {
	promotion := c.Query("promotion")
	if promotion == "" {
		response.BadRequest(c, 10001, "promotion est obligatoire")
		return
	}
	response.OK(c, h.catalogSvc.Groups(promotion))
}

// Subgroups sous-groupes d'un groupe
// GET /api/v1/roster/subgroups?promotion=&group=
func (h *CatalogHandler) Subgroups(c *gin.Context) {
	promotion := c.Query("promotion")
	group := c.Query("group")
	if promotion == "" || group == "" {
		response.BadRequest(c, 10001, "promotion et group sont obligatoires")
		return
	}
	response.OK(c, h.catalogSvc.Subgroups(promotion, group))
}
