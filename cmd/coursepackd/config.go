package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full coursepackd configuration.
type Config struct {
	Listen      string     `yaml:"listen"`
	DBPath      string     `yaml:"db_path"`
	BlobsDir    string     `yaml:"blobs_dir"`
	MaxUploadMB int        `yaml:"max_upload_mb"`
	LogLevel    string     `yaml:"log_level"`
	Auth        AuthConfig `yaml:"auth"`
}

// AuthConfig configures the optional Basic Auth gate. An empty username
// leaves the API open (local or reverse-proxied deployments).
type AuthConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:      ":8086",
		DBPath:      "db/catalog.db",
		BlobsDir:    "blobs",
		MaxUploadMB: 500,
		LogLevel:    "info",
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig
// merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.BlobsDir == "" {
		return fmt.Errorf("blobs_dir is required")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be > 0")
	}
	if c.Auth.Username != "" && c.Auth.PasswordHash == "" {
		return fmt.Errorf("auth.password_hash is required when auth.username is set")
	}
	return nil
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) * 1024 * 1024 }
