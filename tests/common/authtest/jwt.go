//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"roombook/internal/pkg/config"
	"roombook/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, email, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, h.cfg.TokenDuration)
	token, err := service.GenerateToken(email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, email, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, 1*time.Millisecond)
	token, err := service.GenerateToken(email, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
