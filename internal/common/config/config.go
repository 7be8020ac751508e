package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig               `mapstructure:"app"`
	Camunda   CamundaConfig           `mapstructure:"camunda"`
	Database  DatabaseConfig          `mapstructure:"database"`
	Catalog   CatalogConfig           `mapstructure:"catalog"`
	Embedding EmbeddingConfig         `mapstructure:"embedding"`
	Selection SelectionConfig         `mapstructure:"selection"`
	Workers   map[string]WorkerConfig `mapstructure:"workers"`
	Logging   LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

// CatalogConfig holds settings for the template catalog.
// An empty Path means the built-in template table is used.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// EmbeddingConfig holds settings for the embedding backend.
// Preset is the only externally tunable knob of the selection core:
// "speed", "multilingual" or "quality".
type EmbeddingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BaseURL  string `mapstructure:"base_url"`
	Preset   string `mapstructure:"preset"`
	Timeout  int    `mapstructure:"timeout"`   // milliseconds
	CacheTTL int    `mapstructure:"cache_ttl"` // seconds; 0 disables the Redis cache
}

// SelectionConfig holds tuning for the selector's tone adjustment policy.
type SelectionConfig struct {
	ToneMaxBoost float64 `mapstructure:"tone_max_boost"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}
	switch cfg.Embedding.Preset {
	case "", "speed", "multilingual", "quality":
	default:
		return fmt.Errorf("embedding.preset must be one of speed, multilingual, quality (got %q)", cfg.Embedding.Preset)
	}
	if cfg.Selection.ToneMaxBoost < 0 || cfg.Selection.ToneMaxBoost > 1 {
		return fmt.Errorf("selection.tone_max_boost must be within [0,1] (got %v)", cfg.Selection.ToneMaxBoost)
	}
	return nil
}
