package encoding

import (
	"encoding/hex"
	"strings"
)

// cleanHex trims s, drops one leading 0x/0X and removes interior whitespace.
func cleanHex(s string) string {
	trimmed := strings.TrimSpace(s)
	if HasHexPrefix(trimmed) {
		trimmed = trimmed[2:]
	}
	return StripWhitespace(trimmed)
}

func decodeHex(input string) ([]byte, error) {
	cleaned := cleanHex(input)
	if cleaned == "" {
		return nil, ErrNoInput
	}

	// hex.DecodeString accepts upper, lower and mixed case digits
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, NewDecodeError(err, "invalid hex: %v", err)
	}
	return data, nil
}

func canDecodeHex(input string) bool {
	cleaned := cleanHex(input)
	if cleaned == "" || len(cleaned)%2 != 0 {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		if !isHexDigit(cleaned[i]) {
			return false
		}
	}
	return true
}
