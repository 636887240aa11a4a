package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// MustGetAccountID extrait account_id du contexte Gin.
// Si le middleware JWT ne l'a pas injecté, écrit une réponse 401 et
// retourne false ; l'appelant doit alors retourner immédiatement.
func MustGetAccountID(c *gin.Context) (string, bool) {
	v, exists := c.Get("account_id")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	return s, true
}

// MustGetRole extrait role du contexte Gin.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	return s, true
}
