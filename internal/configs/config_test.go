package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingEnvFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "marketplace-client", cfg.AppName)
	assert.Equal(t, "https://api.mercadolibre.com", cfg.Catalog.BaseURL)
	assert.Equal(t, "MLA", cfg.Catalog.SiteID)
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 30, cfg.Catalog.SearchLimit)
	assert.Equal(t, 300*time.Millisecond, cfg.Catalog.SimulatedDelay)
	assert.Equal(t, 4, cfg.Catalog.Parallelism)
	assert.Equal(t, "8080", cfg.Rest.PORT)
	assert.Equal(t, []string{"*"}, cfg.Rest.AllowedOrigins)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CATALOG_BASE_URL=http://localhost:9999\n" +
		"CATALOG_TIMEOUT=5s\n" +
		"SEARCH_LIMIT=10\n" +
		"SIMULATED_DELAY=-1ms\n" +
		"HTTP_PORT=9090\n" +
		"CATALOG_PARALLELISM=0\n" +
		"FLUENTBIT_ENABLED=true\n" +
		"FLUENTBIT_HOST=fluent-bit\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, key := range []string{"CATALOG_BASE_URL", "CATALOG_TIMEOUT", "SEARCH_LIMIT", "SIMULATED_DELAY", "HTTP_PORT", "CATALOG_PARALLELISM", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST"} {
		unsetAfterTest(t, key)
	}

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 10, cfg.Catalog.SearchLimit)
	assert.Equal(t, -time.Millisecond, cfg.Catalog.SimulatedDelay)
	assert.Equal(t, "9090", cfg.Rest.PORT)
	assert.Zero(t, cfg.Catalog.Parallelism)
	assert.True(t, cfg.FluentBit.Enabled)
	assert.Equal(t, 24224, cfg.FluentBit.Port)
	assert.Equal(t, "info", cfg.FluentBit.Level)
}

func TestLoadConfig_BadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SEARCH_LIMIT", "-3")
	t.Setenv("CATALOG_PARALLELISM", "-2")
	t.Setenv("CATALOG_TIMEOUT", "soon")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Catalog.SearchLimit)
	assert.Equal(t, 4, cfg.Catalog.Parallelism)
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_EmptyBaseURL(t *testing.T) {
	t.Setenv("CATALOG_BASE_URL", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}

// godotenv пишет в окружение процесса: чистим за собой
func unsetAfterTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("ORIGINS", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvAsList("ORIGINS", nil))

	t.Setenv("ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsList("ORIGINS", []string{"*"}))
}
