package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvAddr, EnvLogLevel, EnvRateLimit, EnvRateBurst, EnvBasePath} {
		t.Setenv(key, "")
	}

	cfg, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	want := Server{Addr: ":8080", LogLevel: "info", RateLimit: 20, RateBurst: 10, BasePath: "/"}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvRateLimit, "0")
	t.Setenv(EnvRateBurst, "1")
	t.Setenv(EnvBasePath, "/forms")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	want := Server{Addr: "127.0.0.1:9000", LogLevel: "debug", RateLimit: 0, RateBurst: 1, BasePath: "/forms"}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	for _, key := range []string{EnvAddr, EnvLogLevel, EnvRateLimit, EnvRateBurst, EnvBasePath} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FORMWIDGETS_ADDR=:9999\nFORMWIDGETS_RATE_BURST=3\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.RateBurst != 3 {
		t.Fatalf("expected values from .env, got %+v", cfg)
	}
}

func TestLoadEnv_InvalidNumbers(t *testing.T) {
	t.Setenv(EnvRateLimit, "fast")
	if _, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected rate limit parse error")
	}

	t.Setenv(EnvRateLimit, "-1")
	if _, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected negative rate limit error")
	}
}
