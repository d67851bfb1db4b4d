package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/temizmarket/eticaret/internal/config"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/token"
)

func authConfig(t *testing.T, password string) config.Application {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.Application{
		SecretKey:         "test-secret-key",
		AdminPasswordHash: string(hash),
	}
}

func TestLoginGivenCorrectPasswordShouldReturnValidToken(t *testing.T) {
	cfg := authConfig(t, "sifre-123")
	svc := NewAuthService(cfg)

	jwtToken, err := svc.Login(context.Background(), "sifre-123")

	require.NoError(t, err)
	require.NotEmpty(t, jwtToken)
	assert.NoError(t, token.VerifyToken(context.Background(), jwtToken, cfg))
}

func TestLoginGivenWrongPasswordShouldReturnError(t *testing.T) {
	svc := NewAuthService(authConfig(t, "sifre-123"))

	jwtToken, err := svc.Login(context.Background(), "yanlis-sifre")

	require.ErrorIs(t, err, inErrors.ErrWrongPassword)
	assert.Empty(t, jwtToken)
}

func TestLoginTokenShouldFailVerificationWithDifferentSecret(t *testing.T) {
	cfg := authConfig(t, "sifre-123")
	svc := NewAuthService(cfg)

	jwtToken, err := svc.Login(context.Background(), "sifre-123")
	require.NoError(t, err)

	other := cfg
	other.SecretKey = "another-secret"
	assert.Error(t, token.VerifyToken(context.Background(), jwtToken, other))
}
