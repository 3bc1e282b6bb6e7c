// Package config loads dashboard settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"faredash/app/logging"
	"faredash/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FAREDASH_HTTP_ADDR.
const EnvPrefix = "FAREDASH"

// Config is the complete application configuration.
type Config struct {
	HTTP    HTTPConfig     `mapstructure:"http"`
	Store   StoreConfig    `mapstructure:"store"`
	Dataset DatasetConfig  `mapstructure:"dataset"`
	Logger  logging.Config `mapstructure:"logger"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// StoreConfig configures the dataset cache. An empty path keeps it in memory.
type StoreConfig struct {
	Path       string `mapstructure:"path"`
	SyncWrites bool   `mapstructure:"sync_writes"`
}

// DatasetConfig configures the synthetic comment generator.
type DatasetConfig struct {
	StartDate string `mapstructure:"start_date" validate:"required,datetime=2006-01-02"`
	Replicas  int    `mapstructure:"replicas" validate:"gte=1,lte=1000"`
	// Seed fixes the shuffle; zero shuffles differently per process.
	Seed uint64 `mapstructure:"seed"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required_if=Enabled true"`
}

// Start parses StartDate.
func (d DatasetConfig) Start() (time.Time, error) {
	return time.Parse(models.DateLayout, d.StartDate)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.path", "")
	v.SetDefault("store.sync_writes", false)

	v.SetDefault("dataset.start_date", "2025-04-01")
	v.SetDefault("dataset.replicas", 3)
	v.SetDefault("dataset.seed", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/faredash.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "faredash")
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configPath, applies FAREDASH_* environment overrides and
// validates the result. An empty path uses defaults and the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if (c.Logger.Output == "file" || c.Logger.Output == "both") && c.Logger.FilePath == "" {
		return errors.New("logger.file_path is required for file output")
	}
	return nil
}
