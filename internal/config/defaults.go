package config

import "github.com/decodeck/decodeck/internal/chain"

// Default values for configuration fields
const (
	DefaultFormat   = "text"
	DefaultColor    = "auto"
	DefaultMaxSize  = "100MB"
	DefaultLogLevel = "info"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Chain.MaxDepth == 0 {
		cfg.Chain.MaxDepth = chain.DefaultMaxDepth
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = DefaultColor
	}
	if cfg.Input.MaxSize == "" {
		cfg.Input.MaxSize = DefaultMaxSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
