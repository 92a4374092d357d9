// CLAUDE:SUMMARY Configuration struct and defaults for the packscan pipeline.
package packscan

import "log/slog"

// Config configures the ingestion pipeline.
type Config struct {
	// MaxArchiveBytes is the maximum package size to process (default: 500 MB).
	MaxArchiveBytes int64 `json:"max_archive_bytes" yaml:"max_archive_bytes"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxArchiveBytes <= 0 {
		c.MaxArchiveBytes = 500 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
