// Package config loads decodeck's optional TOML configuration file. Values
// in the file are defaults for command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/decodeck/decodeck/internal/safefileio"
	"github.com/pelletier/go-toml/v2"
)

// Config file lookup
const (
	// EnvConfigPath names an environment variable holding the config path
	EnvConfigPath = "DECODECK_CONFIG"
	// DefaultConfigFile is looked up in the working directory
	DefaultConfigFile = "decodeck.toml"
	// maxConfigSize bounds the config file read
	maxConfigSize = 1024 * 1024
)

// ErrConfigNotFound is returned when an explicitly requested config file
// does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config is the root of the configuration file.
type Config struct {
	Chain  ChainConfig  `toml:"chain"`
	Output OutputConfig `toml:"output"`
	Input  InputConfig  `toml:"input"`
	Log    LogConfig    `toml:"log"`
}

// ChainConfig configures chain decoding.
type ChainConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format string `toml:"format"` // text, json or cbor
	Color  string `toml:"color"`  // auto, always or never
}

// InputConfig configures input acquisition.
type InputConfig struct {
	MaxSize string `toml:"max_size"` // e.g. "100MB"
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Parse decodes TOML content, applies defaults and validates the result.
// Unknown keys are rejected so that typos do not go unnoticed.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolvePath returns the config file to read and whether it must exist.
// An explicit path wins over DECODECK_CONFIG, which wins over
// DefaultConfigFile; only the last is optional.
func ResolvePath(flagPath string, getenv func(string) string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if envPath := getenv(EnvConfigPath); envPath != "" {
		return envPath, true
	}
	return DefaultConfigFile, false
}

// Load resolves the config path and parses the file. A missing optional
// file yields Default(). The returned path is empty when no file was read.
func Load(flagPath string) (*Config, string, error) {
	path, required := ResolvePath(flagPath, os.Getenv)

	content, err := safefileio.ReadFile(path, maxConfigSize)
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Default(), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}
