package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/dto"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/internal/service"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// AuthHandler module d'authentification
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crée un AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login connexion d'un enseignant
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "email ou mot de passe incorrect")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh renouvellement de la paire de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountNotFound) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token invalide")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout déconnexion : révocation du token courant
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	expiresAt, _ := c.Get("token_expires_at")
	exp, ok := expiresAt.(time.Time)
	if !ok {
		exp = time.Now()
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me profil du compte connecté
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := MustGetAccountID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), accountID)
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
