package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "public/forms", cfg.FormsDir)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "Buergergeld-Antrag", cfg.ArchivePrefix)
	assert.Equal(t, "Formulare", cfg.ArchiveFallbackName)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"PORT":                   "9090",
		"FORMS_BUCKET":           "forms-bucket",
		"FORMS_PREFIX":           "templates/2025",
		"SESSION_TTL":            "30m",
		"SESSION_SWEEP_INTERVAL": "1m",
		"GENERATION_TIMEOUT":     " 45s ",
		"LOG_LEVEL":              "debug",
		"ARCHIVE_PREFIX":         "Antrag",
		"FORMS_DIR":              "",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "forms-bucket", cfg.FormsBucket)
	assert.Equal(t, "templates/2025", cfg.FormsPrefix)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Antrag", cfg.ArchivePrefix)
	assert.Equal(t, "public/forms", cfg.FormsDir, "empty values keep the default")
}

func TestLoadRejectsBadDurations(t *testing.T) {
	for _, v := range []string{"soon", "-5m", "0s"} {
		_, err := Load(env(map[string]string{"SESSION_TTL": v}))
		assert.ErrorContains(t, err, "SESSION_TTL", v)
	}
}
