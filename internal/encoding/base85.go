package encoding

import (
	"encoding/ascii85"
	"strings"
)

const (
	ascii85Open  = "<~"
	ascii85Close = "~>"
)

// stripAscii85Delimiters removes a surrounding <~ ~> pair. The length guard
// keeps "<~>" from being treated as an empty wrapped stream.
func stripAscii85Delimiters(s string) string {
	if len(s) >= len(ascii85Open)+len(ascii85Close) && HasAscii85Delimiters(s) {
		return s[len(ascii85Open) : len(s)-len(ascii85Close)]
	}
	return s
}

func decodeBase85(input string) ([]byte, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrNoInput
	}

	src := []byte(stripAscii85Delimiters(trimmed))
	// a 'z' group expands one input byte to four output bytes
	dst := make([]byte, 4*len(src))
	n, _, err := ascii85.Decode(dst, src, true)
	if err != nil {
		return nil, NewDecodeError(err, "invalid ascii85: %v", err)
	}
	return dst[:n], nil
}

func canDecodeBase85(input string) bool {
	return HasAscii85Delimiters(strings.TrimSpace(input))
}
