// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3000".
	Port string

	// Database connection parameters. Host, Name, User, and Password are
	// required; DBPort defaults to "5432".
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to restrict.
	CORSOrigins []string

	// StaticDir is the directory the client bundle is served from.
	// Defaults to "web".
	StaticDir string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		DBPort:      getEnv("DB_PORT", "5432"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		StaticDir:   getEnv("STATIC_DIR", "web"),
	}

	var missing []string

	for _, v := range []struct {
		key  string
		dest *string
	}{
		{"DB_HOST", &cfg.DBHost},
		{"DB_NAME", &cfg.DBName},
		{"DB_USER", &cfg.DBUser},
		{"DB_PASSWORD", &cfg.DBPassword},
	} {
		*v.dest = os.Getenv(v.key)
		if *v.dest == "" {
			missing = append(missing, v.key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// DatabaseURL assembles the Postgres connection string from the DB_* parts.
// Credentials are URL-escaped so passwords with special characters survive.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	return u.String()
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
