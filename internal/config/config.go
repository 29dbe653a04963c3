// Package config loads runtime settings from defaults, an optional YAML file,
// environment variables and bound command-line flags, in increasing priority.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"workstudy/internal/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageBolt   = "bolt"
)

// Config holds all configuration values for the application.
type Config struct {
	// Persistence backend: file, sqlite, bolt or memory
	StorageBackend string `mapstructure:"storage_backend"`

	// Directory for file records and the default sqlite database
	DataDir string `mapstructure:"data_dir"`

	// SQLite database path; defaults to <data_dir>/swms.db
	SQLitePath string `mapstructure:"sqlite_path"`

	// BoltDB file path; defaults to <data_dir>/swms.bolt
	BoltPath string `mapstructure:"bolt_path"`

	LogLevel string `mapstructure:"log_level"`

	// OTLP gRPC collector address; empty disables tracing
	OTELEndpoint string `mapstructure:"otel_endpoint"`

	// Fraction of traces recorded when tracing is enabled, in [0, 1]
	TraceSampleRatio float64 `mapstructure:"trace_sample_ratio"`

	// Dump Prometheus metrics after each command
	Metrics bool `mapstructure:"metrics"`
}

// FlagBindings maps config keys to flag names for Load.
var FlagBindings = map[string]string{
	"storage_backend": "storage",
	"data_dir":        "data-dir",
	"log_level":       "log-level",
	"metrics":         "metrics",
}

// Load reads configuration. configPath may be empty; flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage_backend", StorageFile)
	v.SetDefault("data_dir", ".swms")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("bolt_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("trace_sample_ratio", 1.0)
	v.SetDefault("metrics", false)

	envBindings := map[string]string{
		"storage_backend":    "SWMS_STORAGE",
		"data_dir":           "SWMS_DATA_DIR",
		"sqlite_path":        "SWMS_SQLITE_PATH",
		"bolt_path":          "SWMS_BOLT_PATH",
		"log_level":          "SWMS_LOG_LEVEL",
		"otel_endpoint":      "OTEL_EXPORTER_OTLP_ENDPOINT",
		"trace_sample_ratio": "SWMS_TRACE_SAMPLE_RATIO",
		"metrics":            "SWMS_METRICS",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if flags != nil {
		for key, name := range FlagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	switch cfg.StorageBackend {
	case StorageFile, StorageSQLite, StorageBolt, StorageMemory:
	default:
		return nil, fmt.Errorf("invalid storage_backend %q (want file, sqlite, bolt or memory)", cfg.StorageBackend)
	}

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	if cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		return nil, fmt.Errorf("trace_sample_ratio must be between 0 and 1, got %v", cfg.TraceSampleRatio)
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data_dir is required (env: SWMS_DATA_DIR)")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "swms.db")
	}
	if cfg.BoltPath == "" {
		cfg.BoltPath = filepath.Join(cfg.DataDir, "swms.bolt")
	}

	return &cfg, nil
}
