package commands

import (
	"context"
	"strings"

	"roombook/internal/pkg/config"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/jwt"
	"roombook/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

const RoleAdmin = "admin"

type LoginResult struct {
	Token     string
	Principal Principal
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	verifier   CredentialVerifier
	jwtService *jwt.Service
}

func NewAuthCommands(verifier CredentialVerifier, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	principal, err := c.verifier.Verify(ctx, email, pass)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := c.jwtService.GenerateToken(principal.Email, principal.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &LoginResult{Token: tokenString, Principal: *principal}, nil
}

// configCredentialVerifier checks against the bcrypt hash carried in config;
// no plaintext secret lives in the binary.
type configCredentialVerifier struct {
	adminEmail        string
	adminPasswordHash string
}

func NewConfigCredentialVerifier(cfg config.AuthConfig) CredentialVerifier {
	return &configCredentialVerifier{
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: cfg.AdminPasswordHash,
	}
}

func (v *configCredentialVerifier) Verify(_ context.Context, email, pass string) (*Principal, error) {
	if !strings.EqualFold(strings.TrimSpace(email), v.adminEmail) {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(v.adminPasswordHash, pass); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Principal{Email: v.adminEmail, Role: RoleAdmin}, nil
}
