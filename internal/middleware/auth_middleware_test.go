package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/auth"
)

func testAuthMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "schooldesk.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func accessTokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       1,
		Email:    "user@schooldesk.app",
		RoleType: role,
	})
	require.NoError(t, err)
	return access
}

func protectedRouter(mw *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/events/:id",
		mw.JWTAuth(),
		mw.RoleRequired(string(models.RoleAdmin)),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRoleRequired(t *testing.T) {
	mw, jwtService := testAuthMiddleware()
	router := protectedRouter(mw)

	t.Run("admin passes the gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/events/1", nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, jwtService, models.RoleAdmin))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("registrar is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/events/1", nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, jwtService, models.RoleRegistrar))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role context is unauthorized", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodDelete, "/events/1", nil)

		mw.RoleRequired(string(models.RoleAdmin))(c)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	mw, _ := testAuthMiddleware()
	router := protectedRouter(mw)

	req := httptest.NewRequest(http.MethodDelete, "/events/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
