package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the principal. The
// role claim inside the token decides which account collection is read, so
// the gate never probes collections to find a match.
func AuthMiddleware(issuer *auth.Issuer, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header must be a bearer token", nil)
			c.Abort()
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "Token has expired", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			}
			c.Abort()
			return
		}

		principal, err := authUC.Resolve(c.Request.Context(), claims.Subject, claims.Role)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Account no longer exists", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), principal.ID)
		c.Set(string(domain.KeyUserEmail), principal.Email)
		c.Set(string(domain.KeyUserRole), principal.Role)
		c.Set(string(domain.KeyPrincipal), principal)

		c.Next()
	}
}

// RequireRoles rejects the request unless the resolved principal carries one
// of the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "You do not have access to this resource", nil)
		c.Abort()
	}
}

// PrincipalFrom extracts the resolved principal from the request context.
func PrincipalFrom(c *gin.Context) *domain.Principal {
	v, ok := c.Get(string(domain.KeyPrincipal))
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}
