package services

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"personal-website-api/config"
	"personal-website-api/models"
)

type AdminService interface {
	Login(req models.AdminLoginRequest) (string, error)
	GetStats() []models.StatsEntry
}

type adminService struct {
	cfg *config.Config
}

func NewAdminService(cfg *config.Config) AdminService {
	return &adminService{cfg: cfg}
}

// Login checks the environment-sourced admin credentials and issues a signed
// short-lived token. When ADMIN_PASSWORD_HASH is set the password is
// verified against the bcrypt hash; the plain-text comparison is the
// development fallback and is constant-time either way.
func (s *adminService) Login(req models.AdminLoginRequest) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUser)) == 1

	var passOK bool
	if s.cfg.AdminPasswordHash != "" {
		passOK = verifyPassword(req.Password, s.cfg.AdminPasswordHash)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPassword)) == 1
	}

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AdminTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.APISecretKey))
}

// GetStats returns a fixed sample week of page views. Placeholder data, not
// real telemetry.
func (s *adminService) GetStats() []models.StatsEntry {
	return []models.StatsEntry{
		{Day: "Mon", Views: 120},
		{Day: "Tue", Views: 150},
		{Day: "Wed", Views: 180},
		{Day: "Thu", Views: 190},
		{Day: "Fri", Views: 250},
		{Day: "Sat", Views: 300},
		{Day: "Sun", Views: 280},
	}
}
