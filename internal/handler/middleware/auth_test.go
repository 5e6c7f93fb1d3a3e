//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/config"
	"roombook/internal/pkg/jwt"
	"roombook/internal/usecase"
	"roombook/internal/usecase/commands"
	"roombook/tests/common/authtest"
	"roombook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(cfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.TokenDuration)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	admin := router.Group("/admin")
	admin.Use(authMw.RequireAuth(), authMw.RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		email, _ := middleware.UserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	return router
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().Auth
	router := setupAuthRouter(cfg)
	helper := authtest.NewJWTHelper(cfg)

	t.Run("accepts a valid admin token", func(t *testing.T) {
		token := helper.GenerateToken(t, "admin@example.com", commands.RoleAdmin)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@example.com")
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := helper.CreateExpiredToken(t, "admin@example.com", commands.RoleAdmin)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("admin@example.com", commands.RoleAdmin)
		assert.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forbids a non-admin role", func(t *testing.T) {
		token := helper.GenerateToken(t, "user@example.com", "member")
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
