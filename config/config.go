package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Session SessionConfig `yaml:"session"`
	Upload  UploadConfig  `yaml:"upload"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type StoreConfig struct {
	// SeedFile optionally replaces the built-in mock contracts.
	SeedFile string `yaml:"seed_file"`
	// FetchDelayMs simulates network latency on list/detail reads.
	FetchDelayMs int `yaml:"fetch_delay_ms"`
	// DefaultPageSize is the page size used when the caller omits one.
	DefaultPageSize int `yaml:"default_page_size"`
}

type SessionConfig struct {
	// DataDir is where the badger key-value store keeps session state.
	DataDir string `yaml:"data_dir"`
	// TokenExpireDays is encoded into the token's exp claim. The token
	// is never verified against it; see service.SessionManager.
	TokenExpireDays int `yaml:"token_expire_days"`
}

type UploadConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
	// MaxIncrement is the upper bound of the random per-tick progress step.
	MaxIncrement float64 `yaml:"max_increment"`
	// SuccessRate is the probability an upload completes without error.
	SuccessRate float64 `yaml:"success_rate"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config with all defaults applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Store.FetchDelayMs == 0 {
		c.Store.FetchDelayMs = 300
	}
	if c.Store.DefaultPageSize == 0 {
		c.Store.DefaultPageSize = 5
	}
	if c.Session.DataDir == "" {
		c.Session.DataDir = "./data/session"
	}
	if c.Session.TokenExpireDays == 0 {
		c.Session.TokenExpireDays = 7
	}
	if c.Upload.TickIntervalMs == 0 {
		c.Upload.TickIntervalMs = 500
	}
	if c.Upload.MaxIncrement == 0 {
		c.Upload.MaxIncrement = 30
	}
	if c.Upload.SuccessRate == 0 {
		c.Upload.SuccessRate = 0.8
	}
}
