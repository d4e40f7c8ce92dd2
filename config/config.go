package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Knowledge base
	Qdrant QdrantConfig
	Voyage VoyageConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Pipeline policy
	Retrieval RetrievalConfig
	RateLimit RateLimitConfig
	Sandbox   SandboxConfig
	Registry  RegistryConfig
	Libraries LibrariesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
}

// RetrievalConfig controls the hybrid retrieval engine. Chunk size and
// overlap belong to the external document pipeline and are only consumed
// by the ingest script.
type RetrievalConfig struct {
	TopK         int
	ChunkSize    int
	ChunkOverlap int
}

// RateLimitConfig controls the per-session sliding window.
type RateLimitConfig struct {
	MaxRequests   int
	WindowSeconds int
}

// SandboxConfig bounds user-submitted code execution.
type SandboxConfig struct {
	MaxCodeLength  int
	TimeoutSeconds int
}

// RegistryConfig points at the package registry (PyPI).
type RegistryConfig struct {
	BaseURL           string
	TimeoutSeconds    int
	RequestsPerSecond float64
}

// LibrariesConfig enumerates the libraries the doc searcher supports.
type LibrariesConfig struct {
	Supported []string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// DefaultSupportedLibraries is the library set the documentation searcher
// knows official doc roots for.
var DefaultSupportedLibraries = []string{
	"pandas", "numpy", "scikit-learn", "matplotlib", "seaborn",
	"requests", "flask", "django", "fastapi", "sqlalchemy",
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Knowledge base
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Pipeline policy
	cfg.Retrieval.TopK = viper.GetInt("retrieval.top_k")
	cfg.Retrieval.ChunkSize = viper.GetInt("retrieval.chunk_size")
	cfg.Retrieval.ChunkOverlap = viper.GetInt("retrieval.chunk_overlap")

	cfg.RateLimit.MaxRequests = viper.GetInt("rate_limit.max_requests")
	cfg.RateLimit.WindowSeconds = viper.GetInt("rate_limit.window_seconds")

	cfg.Sandbox.MaxCodeLength = viper.GetInt("sandbox.max_code_length")
	cfg.Sandbox.TimeoutSeconds = viper.GetInt("sandbox.timeout_seconds")

	cfg.Registry.BaseURL = viper.GetString("registry.base_url")
	cfg.Registry.TimeoutSeconds = viper.GetInt("registry.timeout_seconds")
	cfg.Registry.RequestsPerSecond = viper.GetFloat64("registry.requests_per_second")

	cfg.Libraries.Supported = viper.GetStringSlice("libraries.supported")
	if len(cfg.Libraries.Supported) == 0 {
		cfg.Libraries.Supported = DefaultSupportedLibraries
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("qdrant.collection_name", "tech_docs")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("retrieval.top_k", 8)
	viper.SetDefault("retrieval.chunk_size", 1000)
	viper.SetDefault("retrieval.chunk_overlap", 300)

	viper.SetDefault("rate_limit.max_requests", 20)
	viper.SetDefault("rate_limit.window_seconds", 60)

	viper.SetDefault("sandbox.max_code_length", 1000)
	viper.SetDefault("sandbox.timeout_seconds", 10)

	viper.SetDefault("registry.base_url", "https://pypi.org")
	viper.SetDefault("registry.timeout_seconds", 5)
	viper.SetDefault("registry.requests_per_second", 2.0)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
