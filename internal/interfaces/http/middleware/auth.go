package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tavolo/internal/domain/access"
	"tavolo/internal/infrastructure/auth"
	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified principal on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, claims.Principal())
		c.Next()
	}
}

// OptionalAuth stores the principal when a valid token is present and lets
// anonymous requests pass through untouched. Invalid tokens are still
// rejected rather than silently downgraded to anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, claims.Principal())
		c.Next()
	}
}

// RequireSuperAdmin rejects principals without the global override role.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !PrincipalFromContext(c).IsSuperAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, nil for
// anonymous requests.
func PrincipalFromContext(c *gin.Context) *access.Principal {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return nil
	}
	principal, ok := value.(*access.Principal)
	if !ok {
		return nil
	}
	return principal
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
