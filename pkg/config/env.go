package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvAddr      = "FORMWIDGETS_ADDR"
	EnvLogLevel  = "FORMWIDGETS_LOG_LEVEL"
	EnvRateLimit = "FORMWIDGETS_RATE_LIMIT"
	EnvRateBurst = "FORMWIDGETS_RATE_BURST"
	EnvBasePath  = "FORMWIDGETS_BASE_PATH"
)

// Server holds runtime settings for the serve command.
type Server struct {
	Addr     string
	LogLevel string
	// RateLimit is requests per second per client on the phone endpoint.
	// Zero disables limiting.
	RateLimit float64
	RateBurst int
	BasePath  string
}

// LoadEnv reads server settings from the environment, loading .env files
// first when present.
func LoadEnv(files ...string) (Server, error) {
	_ = godotenv.Load(files...)

	cfg := Server{
		Addr:     getEnv(EnvAddr, ":8080"),
		LogLevel: getEnv(EnvLogLevel, "info"),
		BasePath: getEnv(EnvBasePath, "/"),
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(getEnv(EnvRateLimit, "20"), 64); err != nil {
		return Server{}, fmt.Errorf("config: %s: %w", EnvRateLimit, err)
	}
	if cfg.RateBurst, err = strconv.Atoi(getEnv(EnvRateBurst, "10")); err != nil {
		return Server{}, fmt.Errorf("config: %s: %w", EnvRateBurst, err)
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks the settings for obviously broken values.
func (s Server) Validate() error {
	if strings.TrimSpace(s.Addr) == "" {
		return fmt.Errorf("config: %s is required", EnvAddr)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("config: %s must not be negative", EnvRateLimit)
	}
	if s.RateBurst < 0 {
		return fmt.Errorf("config: %s must not be negative", EnvRateBurst)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
