package model

import "time"

// Config holds the complete MetaNewsX configuration
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
}

// InputConfig controls how article text is interpreted
type InputConfig struct {
	HTML bool `yaml:"html"` // Treat input as HTML and extract visible text first
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"` // Progress diagnostics on stderr
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Number of concurrent batch workers
}

// CacheConfig controls the in-memory brief cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			HTML: false,
		},
		Output: OutputConfig{
			Verbose: false,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
	}
}
