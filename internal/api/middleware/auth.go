package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/jwt"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/redis"
	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/pkg/response"
)

// JWTAuth authentification par access token.
// Extrait et vérifie le token depuis Authorization: Bearer <token>, puis
// consulte la liste noire Redis (rdb nil → vérification sautée).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "en-tête d'authentification manquant")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "format d'en-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalide ou expiré")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "type de token invalide")
			c.Abort()
			return
		}

		if rdb != nil {
			banned, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && banned {
				response.Unauthorized(c, 10002, "token révoqué")
				c.Abort()
				return
			}
		}

		// Injection dans le contexte de la requête
		c.Set("account_id", claims.AccountID)
		c.Set("role", claims.Role)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth contrôle d'accès par rôle.
// Vérifie que le compte connecté porte l'un des rôles autorisés.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "non authentifié")
			c.Abort()
			return
		}

		accountRole := role.(string)
		for _, r := range allowedRoles {
			if accountRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "accès refusé")
		c.Abort()
	}
}
