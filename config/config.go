package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

type Config struct {
	Port             string
	GinMode          string
	StorageBackend   string
	CredentialsFile  string
	JWTSecret        string
	RedisURL         string
	CacheTTL         time.Duration
	CalendarLocation *time.Location
	LogLevel         log.Level
	LogFormat        string
}

// Load reads a .env file when one exists and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env file, using OS env vars")
	}

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		GinMode:         getenv("GIN_MODE", "release"),
		StorageBackend:  strings.ToLower(getenv("STORAGE_BACKEND", BackendFirestore)),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        10 * time.Minute,
		LogLevel:        log.InfoLevel,
		LogFormat:       strings.ToLower(os.Getenv("LOG_FORMAT")),
	}

	switch cfg.StorageBackend {
	case BackendFirestore:
		if cfg.CredentialsFile == "" {
			return Config{}, errors.New("environment variable GOOGLE_APPLICATION_CREDENTIALS_1 is not set")
		}
	case BackendMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("environment variable JWT_SECRET_KEY is not set")
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid CACHE_TTL %q", v)
		}
		cfg.CacheTTL = d
	}

	cfg.CalendarLocation = time.Local
	if v := os.Getenv("CALENDAR_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CALENDAR_TIMEZONE: %w", err)
		}
		cfg.CalendarLocation = loc
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		cfg.LogLevel = log.DebugLevel
	}
	return cfg, nil
}

// NewLogger returns a logrus logger configured from cfg and applies the same
// settings to the standard logger.
func (c Config) NewLogger() *log.Logger {
	logger := log.New()
	logger.SetLevel(c.LogLevel)
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
		log.SetFormatter(&log.JSONFormatter{})
	}
	return logger
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
