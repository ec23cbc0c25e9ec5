package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Registry RegistryConfig `toml:"registry"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Host            string        `toml:"host"`
	Port            int           `toml:"port"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

type StorageConfig struct {
	// Backend selects the storage implementation: "memory" or "redis"
	Backend string `toml:"backend"`

	RedisURL          string `toml:"redis_url"`
	RedisPoolSize     int    `toml:"redis_pool_size"`
	RedisMinIdleConns int    `toml:"redis_min_idle_conns"`
}

type RegistryConfig struct {
	// Owner is the principal bound as owner on first start
	Owner string `toml:"owner"`
	// SelfAddress is the registry's own principal, used as the owner
	// of the bookkeeping token minted when the minter is bound
	SelfAddress string `toml:"self_address"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "json" or "text"
}

// Load reads configuration from a TOML file, applying defaults for
// anything the file leaves unset, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Default returns the built-in configuration, used when no config file
// is given.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Backend:           "memory",
			RedisURL:          "redis://localhost:6379",
			RedisPoolSize:     10,
			RedisMinIdleConns: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
	cfg.applyEnv()
	return cfg
}

// applyEnv layers environment variables over the current values
func (c *Config) applyEnv() {
	if v := os.Getenv("POKEARCH_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("POKEARCH_REDIS_URL"); v != "" {
		c.Storage.RedisURL = v
	}
	if v := os.Getenv("POKEARCH_OWNER"); v != "" {
		c.Registry.Owner = v
	}
	if v := os.Getenv("POKEARCH_SELF_ADDRESS"); v != "" {
		c.Registry.SelfAddress = v
	}
}
