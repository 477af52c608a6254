// Package config provides configuration loading and structs for the lapwise server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hyperjump/lapwise/internal/ranking"
)

// Environment variables that override secrets from the config file.
const (
	EnvOpenAIKey   = "LAPWISE_OPENAI_API_KEY"
	EnvGeminiKey   = "LAPWISE_GEMINI_API_KEY"
	EnvTavilyKey   = "LAPWISE_TAVILY_API_KEY"
	EnvDatabaseDSN = "LAPWISE_DATABASE_DSN"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool                  `yaml:"debug"`
	Server  ServerConfig          `yaml:"server"`
	Storage StorageConfig         `yaml:"storage"`
	Proxy   ProxyConfig           `yaml:"proxy"`
	Search  SearchConfig          `yaml:"search"`
	LLM     LLMConfig             `yaml:"llm"`
	Catalog CatalogConfig         `yaml:"catalog"`
	Mock    MockConfig            `yaml:"mock"`
	Ranking ranking.RankingConfig `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// RequestTimeoutSeconds bounds each API request.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// StorageConfig selects the saved comparison database.
type StorageConfig struct {
	// Driver is "sqlite3" or "postgres".
	Driver       string `yaml:"driver"`
	DatabasePath string `yaml:"database_path"`
	// DSN is the PostgreSQL connection string.
	DSN string `yaml:"dsn"`
}

// ProxyConfig holds the CORS-style fetch proxy used to retrieve product pages.
type ProxyConfig struct {
	// URL is called as <url>?url=<target>. Empty fetches pages directly.
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// CacheSize is the number of fetched pages kept in memory; -1 disables the cache.
	CacheSize       int `yaml:"cache_size"`
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// SearchConfig holds web search settings.
type SearchConfig struct {
	TavilyAPIKey  string `yaml:"tavily_api_key"`
	TavilyURL     string `yaml:"tavily_url"`
	DuckDuckGoURL string `yaml:"duckduckgo_url"`
	// HitLimit is the number of search hits inspected per compared item.
	HitLimit      int `yaml:"hit_limit"`
	DiscoverLimit int `yaml:"discover_limit"`
}

// LLMConfig lists providers in the order they are tried.
type LLMConfig struct {
	Providers []string       `yaml:"providers"`
	OpenAI    ProviderConfig `yaml:"openai"`
	Gemini    ProviderConfig `yaml:"gemini"`
}

// ProviderConfig holds one LLM provider's settings.
type ProviderConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// CatalogConfig points at an optional YAML or XLSX catalog file.
type CatalogConfig struct {
	Path       string `yaml:"path"`
	Watch      *bool  `yaml:"watch"`
	DebounceMs int    `yaml:"debounce_ms"`
}

// WatchOrDefault returns whether to hot-reload the catalog; defaults to true when unset.
func (c *CatalogConfig) WatchOrDefault() bool {
	if c.Watch != nil {
		return *c.Watch
	}
	return true
}

// MockConfig seeds the mock generator. Zero seeds from the clock.
type MockConfig struct {
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load reads and parses the config file at path, expands paths, applies
// defaults, and applies secrets from a .env file next to it and the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	if cfg.Catalog.Path != "" {
		cfg.Catalog.Path = expandPath(cfg.Catalog.Path, configDir)
	}

	if err := ApplyEnv(&cfg, filepath.Join(configDir, ".env")); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides secrets with values from envFile, when it exists, and
// then from the process environment, which wins.
func ApplyEnv(cfg *Config, envFile string) error {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range []string{EnvOpenAIKey, EnvGeminiKey, EnvTavilyKey, EnvDatabaseDSN} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	set := func(dst *string, key string) {
		if v := strings.TrimSpace(values[key]); v != "" {
			*dst = v
		}
	}
	set(&cfg.LLM.OpenAI.APIKey, EnvOpenAIKey)
	set(&cfg.LLM.Gemini.APIKey, EnvGeminiKey)
	set(&cfg.Search.TavilyAPIKey, EnvTavilyKey)
	set(&cfg.Storage.DSN, EnvDatabaseDSN)
	return nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
