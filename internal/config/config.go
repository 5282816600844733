package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Analyzer AnalyzerConfig
	Cache    CacheConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	// APIKey, when set, is required in the X-API-Key header of every /api/v1 request.
	APIKey string `mapstructure:"api_key"`
}

// RegistryConfig holds settings for the company registry document service.
type RegistryConfig struct {
	APIKey        string   `mapstructure:"api_key"`
	UserAgent     string   `mapstructure:"user_agent"`
	AllowedHosts  []string `mapstructure:"allowed_hosts"`
	TimeoutSecs   int      `mapstructure:"timeout_secs"`
	MaxDocumentMB int64    `mapstructure:"max_document_mb"`
}

// AnalyzerConfig holds settings for the language model used by the analysis pipeline.
type AnalyzerConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
}

// Enabled reports whether a network model is configured.
func (a *AnalyzerConfig) Enabled() bool {
	return a.Provider != "" && a.Provider != ProviderNone
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Backend    string        `mapstructure:"backend"`
	SQLitePath string        `mapstructure:"sqlite_path"`
	TTL        time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Analyzer providers.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
)

// Load reads configuration from environment variables with the FILINGLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FILINGLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.api_key", "")

	// Registry defaults
	v.SetDefault("registry.api_key", "")
	v.SetDefault("registry.user_agent", "FilingLens/1.0")
	v.SetDefault("registry.allowed_hosts", "document-api.company-information.service.gov.uk")
	v.SetDefault("registry.timeout_secs", 60)
	v.SetDefault("registry.max_document_mb", 50)

	// Analyzer defaults
	v.SetDefault("analyzer.provider", ProviderOpenAI)
	v.SetDefault("analyzer.api_key", "")
	v.SetDefault("analyzer.default_model", "")
	v.SetDefault("analyzer.timeout_secs", 60)
	v.SetDefault("analyzer.max_tokens", 1000)
	v.SetDefault("analyzer.temperature", 0.2)

	// Cache defaults
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.sqlite_path", "data/filinglens.db")
	v.SetDefault("cache.ttl", "720h")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "FILINGLENS_SERVER_PORT",
		"server.read_timeout":       "FILINGLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "FILINGLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":        "FILINGLENS_SERVER_ENVIRONMENT",
		"server.api_key":            "FILINGLENS_SERVER_API_KEY",
		"registry.api_key":          "FILINGLENS_REGISTRY_API_KEY",
		"registry.user_agent":       "FILINGLENS_REGISTRY_USER_AGENT",
		"registry.allowed_hosts":    "FILINGLENS_REGISTRY_ALLOWED_HOSTS",
		"registry.timeout_secs":     "FILINGLENS_REGISTRY_TIMEOUT_SECS",
		"registry.max_document_mb":  "FILINGLENS_REGISTRY_MAX_DOCUMENT_MB",
		"analyzer.provider":         "FILINGLENS_ANALYZER_PROVIDER",
		"analyzer.api_key":          "FILINGLENS_ANALYZER_API_KEY",
		"analyzer.default_model":    "FILINGLENS_ANALYZER_DEFAULT_MODEL",
		"analyzer.timeout_secs":     "FILINGLENS_ANALYZER_TIMEOUT_SECS",
		"analyzer.max_tokens":       "FILINGLENS_ANALYZER_MAX_TOKENS",
		"analyzer.temperature":      "FILINGLENS_ANALYZER_TEMPERATURE",
		"cache.backend":             "FILINGLENS_CACHE_BACKEND",
		"cache.sqlite_path":         "FILINGLENS_CACHE_SQLITE_PATH",
		"cache.ttl":                 "FILINGLENS_CACHE_TTL",
		"log.level":                 "FILINGLENS_LOG_LEVEL",
		"log.format":                "FILINGLENS_LOG_FORMAT",
		"cors.allowed_origins":      "FILINGLENS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FILINGLENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FILINGLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		APIKey:       v.GetString("server.api_key"),
	}
	cfg.Registry = RegistryConfig{
		APIKey:        v.GetString("registry.api_key"),
		UserAgent:     v.GetString("registry.user_agent"),
		AllowedHosts:  splitList(v.GetString("registry.allowed_hosts")),
		TimeoutSecs:   v.GetInt("registry.timeout_secs"),
		MaxDocumentMB: v.GetInt64("registry.max_document_mb"),
	}
	cfg.Analyzer = AnalyzerConfig{
		Provider:     strings.ToLower(v.GetString("analyzer.provider")),
		APIKey:       v.GetString("analyzer.api_key"),
		DefaultModel: v.GetString("analyzer.default_model"),
		TimeoutSecs:  v.GetInt("analyzer.timeout_secs"),
		MaxTokens:    v.GetInt("analyzer.max_tokens"),
		Temperature:  v.GetFloat64("analyzer.temperature"),
	}
	cfg.Cache = CacheConfig{
		Backend:    strings.ToLower(v.GetString("cache.backend")),
		SQLitePath: v.GetString("cache.sqlite_path"),
		TTL:        v.GetDuration("cache.ttl"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the credentials and choices required to serve requests are present.
func (c *Config) Validate() error {
	if c.Registry.APIKey == "" {
		return &ConfigurationError{Key: "registry.api_key", Reason: "registry API key is required"}
	}
	switch c.Analyzer.Provider {
	case ProviderNone:
	case ProviderOpenAI, ProviderClaude, ProviderGemini:
		if c.Analyzer.APIKey == "" {
			return &ConfigurationError{
				Key:    "analyzer.api_key",
				Reason: fmt.Sprintf("API key is required for analyzer provider %q", c.Analyzer.Provider),
			}
		}
	default:
		return &ConfigurationError{
			Key:    "analyzer.provider",
			Reason: fmt.Sprintf("unknown analyzer provider %q", c.Analyzer.Provider),
		}
	}
	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendSQLite:
		if c.Cache.SQLitePath == "" {
			return &ConfigurationError{Key: "cache.sqlite_path", Reason: "sqlite cache requires a database path"}
		}
	default:
		return &ConfigurationError{
			Key:    "cache.backend",
			Reason: fmt.Sprintf("unknown cache backend %q", c.Cache.Backend),
		}
	}
	return nil
}

// splitList parses a comma-separated setting, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
