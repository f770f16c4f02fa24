package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries the runtime settings read from the environment.
type Config struct {
	// HTTP server
	Port string

	// Response cache revalidation window
	CacheTTL time.Duration

	// Company-wide annual GMV target, used by the CEO projections
	AnnualGmvTarget float64

	// Data backend selection: "sheets" or "memory"
	DataBackend string

	// Access tokens; pod and client tokens live on the registry
	CeoToken string

	LogLevel string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		CacheTTL:        getEnvDuration("CACHE_TTL", 10*time.Minute),
		AnnualGmvTarget: getEnvFloat("ANNUAL_GMV_TARGET", 10_000_000),
		DataBackend:     getEnv("DATA_BACKEND", "sheets"),
		CeoToken:        getEnv("CEO_TOKEN", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "sheets", "memory":
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be \"sheets\" or \"memory\"", c.DataBackend))
	}

	if c.CacheTTL < 0 {
		problems = append(problems, "cache TTL must not be negative")
	}
	if c.AnnualGmvTarget < 0 {
		problems = append(problems, "annual GMV target must not be negative")
	}
	if c.CeoToken == "" {
		problems = append(problems, "CEO_TOKEN is not set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
