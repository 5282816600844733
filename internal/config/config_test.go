package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filinglens/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Registry: config.RegistryConfig{APIKey: "ch-key"},
		Analyzer: config.AnalyzerConfig{Provider: config.ProviderOpenAI, APIKey: "sk-test"},
		Cache:    config.CacheConfig{Backend: config.CacheBackendMemory},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FILINGLENS_REGISTRY_API_KEY", "ch-key")
	t.Setenv("FILINGLENS_ANALYZER_API_KEY", "sk-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "FilingLens/1.0", cfg.Registry.UserAgent)
	assert.Equal(t, []string{"document-api.company-information.service.gov.uk"}, cfg.Registry.AllowedHosts)
	assert.Equal(t, config.ProviderOpenAI, cfg.Analyzer.Provider)
	assert.Equal(t, 1000, cfg.Analyzer.MaxTokens)
	assert.InDelta(t, 0.2, cfg.Analyzer.Temperature, 1e-9)
	assert.Equal(t, config.CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 30*24*time.Hour, cfg.Cache.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FILINGLENS_REGISTRY_API_KEY", "ch-key")
	t.Setenv("FILINGLENS_ANALYZER_PROVIDER", "GEMINI")
	t.Setenv("FILINGLENS_ANALYZER_API_KEY", "g-key")
	t.Setenv("FILINGLENS_REGISTRY_ALLOWED_HOSTS", "a.example.com, b.example.com,")
	t.Setenv("FILINGLENS_CACHE_BACKEND", "sqlite")
	t.Setenv("FILINGLENS_CACHE_SQLITE_PATH", "/tmp/cache.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderGemini, cfg.Analyzer.Provider)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Registry.AllowedHosts)
	assert.Equal(t, config.CacheBackendSQLite, cfg.Cache.Backend)
	assert.Equal(t, "/tmp/cache.db", cfg.Cache.SQLitePath)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("FILINGLENS_REGISTRY_API_KEY", "ch-key")
	t.Setenv("FILINGLENS_ANALYZER_PROVIDER", "none")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_MissingRegistryKey(t *testing.T) {
	t.Setenv("FILINGLENS_REGISTRY_API_KEY", "")
	t.Setenv("FILINGLENS_ANALYZER_API_KEY", "sk-test")

	cfg, err := config.Load()

	assert.Nil(t, cfg)
	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "registry.api_key", cfgErr.Key)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingAnalyzerKey(t *testing.T) {
	cfg := validConfig()
	cfg.Analyzer.APIKey = ""

	err := cfg.Validate()

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "analyzer.api_key", cfgErr.Key)
}

func TestValidate_ProviderNoneNeedsNoKey(t *testing.T) {
	cfg := validConfig()
	cfg.Analyzer = config.AnalyzerConfig{Provider: config.ProviderNone}

	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Analyzer.Enabled())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Analyzer.Provider = "mistral"

	err := cfg.Validate()

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "analyzer.provider", cfgErr.Key)
}

func TestValidate_SQLiteWithoutPath(t *testing.T) {
	cfg := validConfig()
	cfg.Cache = config.CacheConfig{Backend: config.CacheBackendSQLite}

	err := cfg.Validate()

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "cache.sqlite_path", cfgErr.Key)
}
