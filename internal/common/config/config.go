package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mzhuravlev/feedback-board/internal/common/constants"
	commonerrors "github.com/mzhuravlev/feedback-board/internal/common/errors"
)

// Config is built once in main and passed to constructors explicitly;
// nothing reads the environment after Load returns.
type Config struct {
	HTTPPort       string
	DatabaseURL    string
	SessionSecret  string
	SessionTTL     time.Duration
	BcryptCost     int
	RequestTimeout time.Duration
	LogDir         string
	LogLevel       string
}

func Load() (Config, error) {
	// .env is a local development convenience, absence is not an error.
	_ = godotenv.Load()

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	sessionSecret, err := mustEnv("SESSION_SECRET")
	if err != nil {
		return Config{}, err
	}

	if len(sessionSecret) < constants.SessionSecretMinLength {
		return Config{}, fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidSessionSecret, len(sessionSecret))
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:    databaseURL,
		SessionSecret:  sessionSecret,
		SessionTTL:     getDurationEnv("SESSION_TTL", constants.DefaultSessionTTL),
		BcryptCost:     getIntEnv("BCRYPT_COST", constants.DefaultBcryptCost),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
