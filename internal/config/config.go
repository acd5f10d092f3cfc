// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"pcbuild/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog source settings
	Catalog CatalogConfig `json:"catalog"`

	// Generator contains configuration generator settings
	Generator GeneratorConfig `json:"generator"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains persistence service settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig selects where overrides and templates come from
type CatalogConfig struct {
	// OverridesPath is the local override patch-set file
	OverridesPath string `json:"overrides_path"`

	// RemoteURL is the persistence service base URL; empty means local mode
	RemoteURL string `json:"remote_url,omitempty"`

	// AdminPassword authenticates mutating remote calls
	AdminPassword string `json:"admin_password,omitempty"`

	// TimeoutSeconds bounds each remote request
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Timeout returns the remote request timeout
func (c CatalogConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GeneratorConfig contains generator settings
type GeneratorConfig struct {
	// HeuristicsPath is an optional HCL file tuning the fallback heuristics
	HeuristicsPath string `json:"heuristics_path,omitempty"`

	// Offline forces the literal four-bracket fallback
	Offline bool `json:"offline,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// Locale drives thousands grouping of prices
	Locale string `json:"locale"`

	// CurrencySuffix is appended to formatted prices
	CurrencySuffix string `json:"currency_suffix"`
}

// ServerConfig contains persistence service settings. Environment
// variables override the file after Load.
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"PCBUILD_ADDR"`

	// Store is the backend: memory, sqlite or postgres
	Store string `json:"store" env:"PCBUILD_STORE"`

	// SQLitePath is the sqlite database file
	SQLitePath string `json:"sqlite_path" env:"PCBUILD_SQLITE_PATH"`

	// DatabaseURL is the postgres connection string
	DatabaseURL string `json:"database_url,omitempty" env:"DATABASE_URL"`

	// AdminPassword gates mutating endpoints
	AdminPassword string `json:"admin_password,omitempty" env:"ADMIN_PASSWORD"`

	// Seed loads the baseline templates into an empty store
	Seed bool `json:"seed" env:"PCBUILD_SEED"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds" env:"PCBUILD_READ_TIMEOUT"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `json:"write_timeout_seconds" env:"PCBUILD_WRITE_TIMEOUT"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".pcbuild")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			OverridesPath:  filepath.Join(dataDir, "overrides.json"),
			TimeoutSeconds: 10,
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			Locale:         "vi",
			CurrencySuffix: "₫",
		},
		Server: ServerConfig{
			Addr:                ":8080",
			Store:               "sqlite",
			SQLitePath:          filepath.Join(dataDir, "pcbuild.db"),
			Seed:                true,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 30,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default configuration file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".pcbuild.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overlays environment variables onto the server section
func (c *Config) ApplyEnv() error {
	return env.Parse(&c.Server)
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
