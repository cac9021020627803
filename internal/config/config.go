package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Port        string `env:"PORT,default=5000"`
	FrontendURL string `env:"FRONTEND_URL"`
	GinMode     string `env:"GIN_MODE,default=debug"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	DBDriver    string `env:"DB_DRIVER,default=postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBUser      string `env:"DB_USER,default=postgres"`
	DBPassword  string `env:"DB_PASSWORD,default=postgres"`
	DBName      string `env:"DB_NAME,default=requirements"`
	DBSSLMode   string `env:"DB_SSLMODE,default=disable"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in gin release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// AllowedOrigins returns the origins listed in FRONTEND_URL. An empty result
// means every origin is accepted.
func (c *Config) AllowedOrigins() []string {
	if !c.IsProduction() {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.FrontendURL, ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
