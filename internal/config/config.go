package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the service configuration.
type Config struct {
	Port string

	// Template source, first match wins: bucket, base URL, directory.
	FormsDir     string
	FormsBaseURL string
	FormsBucket  string
	FormsPrefix  string

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	ArchivePrefix       string
	ArchiveFallbackName string
	GenerationTimeout   time.Duration

	LogLevel string
}

func Defaults() Config {
	return Config{
		Port:                 "8080",
		FormsDir:             "public/forms",
		SessionTTL:           2 * time.Hour,
		SessionSweepInterval: 5 * time.Minute,
		ArchivePrefix:        "Buergergeld-Antrag",
		ArchiveFallbackName:  "Formulare",
		GenerationTimeout:    30 * time.Second,
		LogLevel:             "info",
	}
}

// FromEnv reads .env when present, then the process environment.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return Load(os.LookupEnv)
}

// Load builds a Config from lookup, applying defaults for unset keys.
func Load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := get("FORMS_DIR"); ok {
		cfg.FormsDir = v
	}
	if v, ok := get("FORMS_BASE_URL"); ok {
		cfg.FormsBaseURL = v
	}
	if v, ok := get("FORMS_BUCKET"); ok {
		cfg.FormsBucket = v
	}
	if v, ok := get("FORMS_PREFIX"); ok {
		cfg.FormsPrefix = v
	}
	if v, ok := get("ARCHIVE_PREFIX"); ok {
		cfg.ArchivePrefix = v
	}
	if v, ok := get("ARCHIVE_FALLBACK_NAME"); ok {
		cfg.ArchiveFallbackName = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SESSION_TTL", &cfg.SessionTTL},
		{"SESSION_SWEEP_INTERVAL", &cfg.SessionSweepInterval},
		{"GENERATION_TIMEOUT", &cfg.GenerationTimeout},
	}
	for _, d := range durations {
		v, ok := get(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.key, err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %s", d.key, v)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
