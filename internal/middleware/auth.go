package middleware

import (
	"net/http"
	"strings"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// UsuarioIDKey and UsuarioRolKey expose the authenticated user to handlers.
	UsuarioIDKey  = "usuario_id"
	UsuarioRolKey = "usuario_rol"
)

// JWTAuth rejects requests without a valid Bearer access token.
func JWTAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Falta el token de autenticación"))
			return
		}

		claims, err := auth.ValidarToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Tipo != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(UsuarioIDKey, claims.UserID)
		c.Set(UsuarioRolKey, claims.Rol)
		c.Next()
	}
}

// RequireRole gates an endpoint to the given roles. Runs after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	permitidos := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		permitidos[r] = struct{}{}
	}
	return func(c *gin.Context) {
		rol := c.GetString(UsuarioRolKey)
		if _, ok := permitidos[rol]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No tiene permisos para esta operación"))
			return
		}
		c.Next()
	}
}
