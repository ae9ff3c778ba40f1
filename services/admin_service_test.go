package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"personal-website-api/config"
	"personal-website-api/models"
)

func adminTestConfig() *config.Config {
	return &config.Config{
		AdminUser:     "admin",
		AdminPassword: "admin123",
		APISecretKey:  "test-secret",
		AdminTokenTTL: time.Hour,
	}
}

func TestAdminLoginIssuesSignedToken(t *testing.T) {
	svc := NewAdminService(adminTestConfig())

	token, err := svc.Login(models.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAdminService(adminTestConfig())

	_, err := svc.Login(models.AdminLoginRequest{Username: "admin", Password: "admin12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(models.AdminLoginRequest{Username: "root", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginPrefersPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := adminTestConfig()
	cfg.AdminPasswordHash = string(hash)
	svc := NewAdminService(cfg)

	// The plain-text env password is ignored once a hash is configured.
	_, err = svc.Login(models.AdminLoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := svc.Login(models.AdminLoginRequest{Username: "admin", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
