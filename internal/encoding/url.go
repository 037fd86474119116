package encoding

import (
	"strings"
	"unicode/utf8"
)

// percentDecode decodes %XX escapes. A '%' that is not followed by two hex
// digits is kept literally, matching lenient browser behaviour; net/url
// rejects such input, which is why this is a local loop.
func percentDecode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		out = append(out, s[i])
	}
	return out
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func decodeURL(input string) ([]byte, error) {
	if input == "" {
		return nil, ErrNoInput
	}

	// '+' means space in form encoding
	decoded := percentDecode(strings.ReplaceAll(input, "+", " "))
	if !utf8.Valid(decoded) {
		return nil, NewDecodeError(nil, "invalid URL encoding: decoded bytes are not valid UTF-8")
	}
	return decoded, nil
}

func canDecodeURL(input string) bool {
	if !strings.Contains(input, "%") {
		return false
	}
	for i := 0; i < len(input); i++ {
		if input[i] != '%' {
			continue
		}
		if i+2 >= len(input) || !isHexDigit(input[i+1]) || !isHexDigit(input[i+2]) {
			return false
		}
	}
	return true
}
