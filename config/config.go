package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AppName    = "Personal Website API"
	AppVersion = "1.0.0"
)

// Config holds the application configuration loaded from environment
// variables. It is constructed once in main and passed to every component
// that needs it; nothing re-reads the environment after startup.
type Config struct {
	Debug       bool   `env:"DEBUG" envDefault:"true"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`

	DatabaseURL string `env:"DATABASE_URL" envDefault:"./data/app.db"`

	// Raw origins value; use AllowedOrigins() after Load.
	AllowedOriginsRaw string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:4000"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"noreply@yourdomain.com"`
	EmailTo      string `env:"EMAIL_TO"`
	EnableEmail  bool   `env:"ENABLE_EMAIL" envDefault:"false"`

	AdminUser         string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	APISecretKey  string        `env:"API_SECRET_KEY" envDefault:"dev-secret-key-change-in-production"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"1h"`

	allowedOrigins []string
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	origins, err := parseOrigins(cfg.AllowedOriginsRaw)
	if err != nil {
		return nil, err
	}
	cfg.allowedOrigins = origins

	cfg.DatabaseURL = normalizeDatabaseURL(cfg.DatabaseURL)

	return cfg, nil
}

// AllowedOrigins returns the normalized CORS origin allow-list.
func (c *Config) AllowedOrigins() []string {
	return c.allowedOrigins
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UsePostgres reports whether the database URL points at a Postgres server
// rather than a local sqlite file.
func (c *Config) UsePostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://")
}

// parseOrigins accepts either a JSON array literal or a comma-separated
// string and normalizes it to a list of trimmed origins. A value that looks
// like a JSON array but fails to parse is a startup error, not a silent
// fallback.
func parseOrigins(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var origins []string
		if err := json.Unmarshal([]byte(raw), &origins); err != nil {
			return nil, fmt.Errorf("ALLOWED_ORIGINS is not a valid JSON array: %w", err)
		}
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins, nil
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins, nil
}

// normalizeDatabaseURL rewrites the SQLAlchemy-style postgresql:// scheme to
// the postgres:// form the pgx driver expects. Already-qualified URLs and
// sqlite paths pass through untouched.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgresql://") {
		return "postgres://" + strings.TrimPrefix(url, "postgresql://")
	}
	return url
}
