package cli

import (
	"strings"

	"github.com/decodeck/decodeck/internal/output"
	"github.com/decodeck/decodeck/internal/terminal"
)

// ParseOutputFormat converts string to output.Format
func ParseOutputFormat(format string) (output.Format, error) {
	switch strings.ToLower(format) {
	case "text":
		return output.FormatText, nil
	case "json":
		return output.FormatJSON, nil
	case "cbor":
		return output.FormatCBOR, nil
	default:
		return output.FormatText, ErrInvalidOutputFormat
	}
}

// ParseColorMode converts string to terminal.ColorMode
func ParseColorMode(mode string) (terminal.ColorMode, error) {
	switch strings.ToLower(mode) {
	case "auto":
		return terminal.ColorAuto, nil
	case "always":
		return terminal.ColorAlways, nil
	case "never":
		return terminal.ColorNever, nil
	default:
		return terminal.ColorAuto, ErrInvalidColorMode
	}
}

// ValidateMaxDepth rejects chain depths below one.
func ValidateMaxDepth(depth int) error {
	if depth < 1 {
		return ErrInvalidMaxDepth
	}
	return nil
}
