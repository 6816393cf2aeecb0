package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/domain/access"
	"tavolo/internal/infrastructure/auth"
	"tavolo/internal/shared/logger"
)

func newAuthRouter(t *testing.T, jwtSvc *auth.JWTService, required bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtSvc, logger.NewLogger())
	r := gin.New()
	if required {
		r.Use(m.RequireAuth())
	} else {
		r.Use(m.OptionalAuth())
	}
	r.GET("/whoami", func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": principal.UserID, "role": principal.Role})
	})
	return r
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(t, auth.NewJWTService("secret", 15), true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 15)
	token, err := jwtSvc.Generate(access.Principal{UserID: 42, Role: access.RoleOwner, RestaurantID: 7})
	require.NoError(t, err)

	r := newAuthRouter(t, jwtSvc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestRequireAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	other := auth.NewJWTService("other-secret", 15)
	token, err := other.Generate(access.Principal{UserID: 42, Role: access.RoleOwner, RestaurantID: 7})
	require.NoError(t, err)

	r := newAuthRouter(t, auth.NewJWTService("secret", 15), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	r := newAuthRouter(t, auth.NewJWTService("secret", 15), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestOptionalAuthStillRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(t, auth.NewJWTService("secret", 15), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
