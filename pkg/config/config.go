// Package config provides configuration management for the kclique pipeline.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the pipeline. There is deliberately no
// network, database, or object-storage section: the pipeline reads one edge
// list file, runs in-process, and writes its result to stdout.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Log      LogConfig      `mapstructure:"log"`
}

// PipelineConfig holds tunables for the degeneracy/truss/clique stages.
type PipelineConfig struct {
	// MaxWorkers is loaded and validated (must be >= 0) but no stage reads
	// it: every parallel stage uses the worker count given as the CLI's
	// <p> argument.
	MaxWorkers int `mapstructure:"max_workers"`

	// TrussEnabled controls whether S4 (k-truss edge filtering) runs before
	// clique listing. Disabling it answers "is k-truss pruning worth the
	// pass" by comparing counts and timings with it off.
	TrussEnabled bool `mapstructure:"truss_enabled"`

	// Dedup controls whether S1 removes duplicate edges (same unordered
	// pair appearing more than once in the edge list) at load time.
	Dedup bool `mapstructure:"dedup"`

	// ChunkSize is loaded and validated (must be >= 1) but no stage reads
	// it: the prefix sum, triangle counting and peeling each split their
	// work into one contiguous share per worker.
	ChunkSize int `mapstructure:"chunk_size"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path. If configPath is
// empty, Load looks for a "config.yaml"/"config.json" in the current
// directory and falls back to defaults if none is found. Load never
// consults environment variables: a run's behavior is fully determined by
// its config file and CLI flags.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file, defaults stand
		} else if os.IsNotExist(err) {
			// explicit path doesn't exist, defaults stand
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.max_workers", 0)
	v.SetDefault("pipeline.truss_enabled", true)
	v.SetDefault("pipeline.dedup", false)
	v.SetDefault("pipeline.chunk_size", 4096)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.MaxWorkers < 0 {
		return fmt.Errorf("pipeline.max_workers must be >= 0")
	}
	if c.Pipeline.ChunkSize < 1 {
		return fmt.Errorf("pipeline.chunk_size must be >= 1")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}
