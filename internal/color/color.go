// Package color wraps text in ANSI escape sequences for the text report
// format. A disabled Palette returns text unchanged.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	boldCode   = "\033[1m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

func plain(text string) string {
	return text
}

// Palette assigns a color to each role in a report.
type Palette struct {
	Label   Color // Field names
	Value   Color // Encoding names and sizes
	Success Color
	Warning Color
	Error   Color
	Dim     Color // Secondary details such as confidence
}

// NewPalette returns the ANSI palette when enabled and a pass-through
// palette otherwise.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{Label: plain, Value: plain, Success: plain, Warning: plain, Error: plain, Dim: plain}
	}
	return Palette{
		Label:   NewColor(boldCode),
		Value:   NewColor(cyanCode),
		Success: NewColor(greenCode),
		Warning: NewColor(yellowCode),
		Error:   NewColor(redCode),
		Dim:     NewColor(grayCode),
	}
}
