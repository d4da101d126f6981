package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mzhuravlev/feedback-board/internal/common/config"
	commonerrors "github.com/mzhuravlev/feedback-board/internal/common/errors"
)

const validSecret = "test-session-secret-at-least-32-bytes-long"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/board")
	t.Setenv("SESSION_SECRET", validSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.HTTPPort)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h ttl, got %v", cfg.SessionTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", validSecret)

	_, err := config.Load()
	if !errors.Is(err, commonerrors.ErrMissingRequiredEnv) {
		t.Errorf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/board")
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	if !errors.Is(err, commonerrors.ErrInvalidSessionSecret) {
		t.Errorf("expected ErrInvalidSessionSecret, got %v", err)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected fallback ttl, got %v", cfg.SessionTTL)
	}
}
