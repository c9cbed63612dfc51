// Package config loads fabcore configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"fabcore/internal/costing"
	"fabcore/internal/substrate"
	"fabcore/internal/substrate/s3"
)

// Config holds all configuration for fabcore. Values come from a YAML file
// (config.yaml) or environment variables; environment variables override YAML
// for fields that carry both tags. Credentials must only come from the
// environment.
type Config struct {
	Env     string `yaml:"env" env:"FABCORE_ENV" env-default:"local"`
	Version string `yaml:"-"` // Set at load time, not from config.

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"FABCORE_LOG_LEVEL" env-default:"info"`

	// MetricsAddr serves Prometheus metrics when non-empty.
	MetricsAddr string `yaml:"metrics_addr" env:"FABCORE_METRICS_ADDR" env-default:""`

	Store   StoreConfig    `yaml:"store"`
	Seed    SeedConfig     `yaml:"seed"`
	Costing costing.Config `yaml:"costing"`
}

// StoreConfig selects and configures the persistence substrate.
type StoreConfig struct {
	// Driver is one of: memory, fs, sqlite, postgres, s3.
	Driver string `yaml:"driver" env:"FABCORE_STORE_DRIVER" env-default:"sqlite"`

	// FSDir is the root directory for the fs driver.
	FSDir string `yaml:"fs_dir" env:"FABCORE_STORE_FS_DIR" env-default:"./data"`

	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `yaml:"sqlite_path" env:"FABCORE_STORE_SQLITE_PATH" env-default:"./fabcore.db"`

	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string `yaml:"-" env:"FABCORE_STORE_POSTGRES_DSN"` // Carries credentials - not in YAML.

	// S3 driver settings. Credentials come from the environment or the
	// ambient AWS credential chain.
	S3Region          string `yaml:"s3_region" env:"FABCORE_STORE_S3_REGION" env-default:""`
	S3Bucket          string `yaml:"s3_bucket" env:"FABCORE_STORE_S3_BUCKET" env-default:""`
	S3Endpoint        string `yaml:"s3_endpoint" env:"FABCORE_STORE_S3_ENDPOINT" env-default:""`
	S3PathStyle       bool   `yaml:"s3_path_style" env:"FABCORE_STORE_S3_PATH_STYLE" env-default:"false"`
	S3AccessKeyID     string `yaml:"-" env:"FABCORE_STORE_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `yaml:"-" env:"FABCORE_STORE_S3_SECRET_ACCESS_KEY"`
	S3SessionToken    string `yaml:"-" env:"FABCORE_STORE_S3_SESSION_TOKEN"`
}

// SeedConfig controls the seed/migration controller.
type SeedConfig struct {
	// Enabled runs the seed check at startup.
	Enabled bool `yaml:"enabled" env:"FABCORE_SEED_ENABLED" env-default:"true"`
}

// SubstrateOptions maps the store section onto substrate open options.
func (c StoreConfig) SubstrateOptions() substrate.Options {
	return substrate.Options{
		Driver:      substrate.Driver(c.Driver),
		FSRoot:      c.FSDir,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN,
		S3: s3.Config{
			Region:          c.S3Region,
			Bucket:          c.S3Bucket,
			Endpoint:        c.S3Endpoint,
			PathStyle:       c.S3PathStyle,
			AccessKeyID:     c.S3AccessKeyID,
			SecretAccessKey: c.S3SecretAccessKey,
			SessionToken:    c.S3SessionToken,
		},
	}
}

// Load reads configuration from config.yaml with environment variable
// overrides; when no config.yaml exists, the environment alone is read. The
// version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch substrate.Driver(c.Store.Driver) {
	case substrate.DriverMemory, substrate.DriverFS, substrate.DriverSQLite, substrate.DriverPostgres, substrate.DriverS3:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if substrate.Driver(c.Store.Driver) == substrate.DriverPostgres && c.Store.PostgresDSN == "" {
		return fmt.Errorf("postgres driver requires FABCORE_STORE_POSTGRES_DSN")
	}
	if substrate.Driver(c.Store.Driver) == substrate.DriverS3 && c.Store.S3Bucket == "" {
		return fmt.Errorf("s3 driver requires a bucket")
	}
	return nil
}
