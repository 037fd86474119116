package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/decodeck/decodeck/internal/input"
	"github.com/decodeck/decodeck/internal/logging"
)

// ErrInvalidConfig is matched by every *ValidationError under errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validFormats = []string{"text", "json", "cbor"}
	validColors  = []string{"auto", "always", "never"}
)

// ValidationError reports a configuration field with an unusable value.
type ValidationError struct {
	Field  string // Dotted TOML key, e.g. "chain.max_depth"
	Value  any    // The offending value
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every field and returns the first problem found.
func Validate(cfg *Config) error {
	if cfg.Chain.MaxDepth < 1 {
		return &ValidationError{Field: "chain.max_depth", Value: cfg.Chain.MaxDepth, Reason: "must be at least 1"}
	}
	if !slices.Contains(validFormats, cfg.Output.Format) {
		return &ValidationError{Field: "output.format", Value: cfg.Output.Format, Reason: "must be one of text, json, cbor"}
	}
	if !slices.Contains(validColors, cfg.Output.Color) {
		return &ValidationError{Field: "output.color", Value: cfg.Output.Color, Reason: "must be one of auto, always, never"}
	}
	if _, err := input.ParseSize(cfg.Input.MaxSize); err != nil {
		return &ValidationError{Field: "input.max_size", Value: cfg.Input.MaxSize, Reason: "must be a size such as 100MB"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Value: cfg.Log.Level, Reason: "must be one of debug, info, warn, error"}
	}
	return nil
}
