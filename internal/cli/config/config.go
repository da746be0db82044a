package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the halotools CLI configuration
type Config struct {
	Sim     SimConfig     `mapstructure:"sim"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SimConfig configures the fake simulation used for mock population
type SimConfig struct {
	NumHalos int     `mapstructure:"num_halos"`
	BoxSize  float64 `mapstructure:"box_size"`
	Redshift float64 `mapstructure:"redshift"`
	Seed     int64   `mapstructure:"seed"`
}

// CacheConfig configures the on-disk catalog cache
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads the configuration from halotools.yml or halotools.yaml in the
// current directory, falling back to defaults when no file exists.
// Environment variables override file values.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("sim.num_halos", 1000)
	v.SetDefault("sim.box_size", 250.0)
	v.SetDefault("sim.redshift", 0.0)
	v.SetDefault("sim.seed", 43)
	v.SetDefault("cache.path", "halotools_cache.db")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("halotools")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HALOTOOLS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Sim.NumHalos <= 0 {
		return fmt.Errorf("sim.num_halos must be positive, got: %d", cfg.Sim.NumHalos)
	}
	if cfg.Sim.BoxSize <= 0 {
		return fmt.Errorf("sim.box_size must be positive, got: %g", cfg.Sim.BoxSize)
	}
	if cfg.Sim.Redshift < 0 {
		return fmt.Errorf("sim.redshift must be non-negative, got: %g", cfg.Sim.Redshift)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got: %q",
			cfg.Logging.Level)
	}
	return nil
}
