package terminal

import (
	"os"
	"strings"
)

// ColorMode is the user's color setting.
type ColorMode int

// Color modes
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"ansi",
	"linux",
	"alacritty",
}

// termSupportsColor checks a TERM value against colorTerminals. Unknown
// terminals get no color.
func termSupportsColor(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if value == colorTerm || strings.HasPrefix(value, colorTerm+"-") {
			return true
		}
	}
	return false
}

// ColorEnabled decides whether output should be colored. Priority:
//  1. ColorAlways / ColorNever
//  2. CLICOLOR_FORCE (truthy)
//  3. NO_COLOR (any value, even empty)
//  4. CI environments and non-TTY output get no color
//  5. TERM must name a color terminal
//  6. CLICOLOR, if set
func ColorEnabled(mode ColorMode, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if !isTTY || IsCIEnvironment() || !termSupportsColor(os.Getenv("TERM")) {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return !isFalsy(cliColor)
	}
	return true
}

// StreamColorEnabled applies ColorEnabled to f.
func StreamColorEnabled(mode ColorMode, f *os.File) bool {
	return ColorEnabled(mode, IsTerminal(f))
}
