package encoding

import (
	"encoding/base32"
	"strings"
)

func cleanBase32(s string) string {
	return strings.ToUpper(StripWhitespace(s))
}

func isBase32Char(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('2' <= c && c <= '7') || c == '='
}

func decodeBase32(input string) ([]byte, error) {
	cleaned := cleanBase32(input)
	if cleaned == "" {
		return nil, ErrNoInput
	}

	padded := Pad(cleaned, 8)
	data, err := base32.StdEncoding.DecodeString(padded)
	if err != nil {
		return nil, NewDecodeError(err, "invalid base32: %v", err)
	}

	// encoding/base32 ignores trailing bits; the canonical form must
	// re-encode to the same text.
	if base32.StdEncoding.EncodeToString(data) != padded {
		return nil, NewDecodeError(nil, "invalid base32: non-zero trailing bits")
	}
	return data, nil
}

func canDecodeBase32(input string) bool {
	cleaned := cleanBase32(input)
	if cleaned == "" {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		if !isBase32Char(cleaned[i]) {
			return false
		}
	}
	return true
}
