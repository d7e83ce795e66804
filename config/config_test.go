package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME_REGION", "")
	t.Setenv("SUGGEST_LIMIT", "")
	t.Setenv("API_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, SUGGEST_DEFAULT_LIMIT, cfg.SuggestLimit)
	assert.Equal(t, DefaultHomeRegion, cfg.HomeRegion)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOME_REGION", " Langkawi , Yan ,,")
	t.Setenv("API_BASE_URL", "https://example.test/api/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SUGGEST_LIMIT", "100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, []string{"Langkawi", "Yan"}, cfg.HomeRegion)
	assert.Equal(t, "https://example.test/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, SUGGEST_MAX_LIMIT, cfg.SuggestLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestClampSuggestLimit(t *testing.T) {
	assert.Equal(t, SUGGEST_MIN_LIMIT, ClampSuggestLimit(1))
	assert.Equal(t, 12, ClampSuggestLimit(12))
	assert.Equal(t, SUGGEST_MAX_LIMIT, ClampSuggestLimit(21))
}

func TestGetResourcePath_UsesProjectRoot(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/tourism")

	assert.Equal(t, filepath.Join("/srv/tourism", "resources", ROUTES_RESOURCE), GetResourcePath(ROUTES_RESOURCE))
}
