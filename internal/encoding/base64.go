package encoding

import (
	"encoding/base64"
	"strings"
)

// base64 engines reject non-zero trailing bits so that ordinary words do
// not decode by accident.
var (
	base64Standard = base64.StdEncoding.Strict()
	base64URLSafe  = base64.URLEncoding.Strict()
)

// IsURLSafeBase64 reports whether s uses the URL-safe alphabet, i.e.
// whether it contains '-' or '_'.
func IsURLSafeBase64(s string) bool {
	return strings.ContainsAny(s, "-_")
}

func decodeBase64(input string) ([]byte, error) {
	cleaned := StripWhitespace(input)
	if cleaned == "" {
		return nil, ErrNoInput
	}

	engine := base64Standard
	if IsURLSafeBase64(cleaned) {
		engine = base64URLSafe
	}

	data, err := engine.DecodeString(Pad(cleaned, 4))
	if err != nil {
		return nil, NewDecodeError(err, "invalid base64: %v", err)
	}
	return data, nil
}

func canDecodeBase64(input string) bool {
	cleaned := StripWhitespace(input)
	if cleaned == "" {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if !isASCIIAlnum(c) && !strings.ContainsRune("+/-_=", rune(c)) {
			return false
		}
	}
	return true
}
