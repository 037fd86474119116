package encoding

import (
	"fmt"
	"strings"
	"unicode"
)

// Codec decodes data for exactly one encoding. It is a tagged value over
// the closed set of supported types; the zero value is the Base64 codec.
type Codec struct {
	typ Type
}

// Codec returns the codec for t.
func (t Type) Codec() Codec {
	return Codec{typ: t}
}

// Type returns the encoding this codec handles.
func (c Codec) Type() Type {
	return c.typ
}

// Name returns the wire token of the codec's encoding.
func (c Codec) Name() string {
	return c.typ.String()
}

// Decode decodes input. Empty input fails with ErrNoInput; malformed
// content fails with a *DecodeError.
func (c Codec) Decode(input string) ([]byte, error) {
	switch c.typ {
	case Base64:
		return decodeBase64(input)
	case Hex:
		return decodeHex(input)
	case Base32:
		return decodeBase32(input)
	case URL:
		return decodeURL(input)
	case Base85:
		return decodeBase85(input)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(c.typ))
	}
}

// CanDecode is a permissive self-test: it reports whether input looks like
// something this codec could decode. Detect does not use it.
func (c Codec) CanDecode(input string) bool {
	switch c.typ {
	case Base64:
		return canDecodeBase64(input)
	case Hex:
		return canDecodeHex(input)
	case Base32:
		return canDecodeBase32(input)
	case URL:
		return canDecodeURL(input)
	case Base85:
		return canDecodeBase85(input)
	default:
		return false
	}
}

// Decode decodes input with the codec for t.
func Decode(input string, t Type) ([]byte, error) {
	return t.Codec().Decode(input)
}

// StripWhitespace removes every Unicode whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Pad appends '=' until len(s) is a multiple of block.
func Pad(s string, block int) string {
	if remainder := len(s) % block; remainder != 0 {
		return s + strings.Repeat("=", block-remainder)
	}
	return s
}

// HasHexPrefix reports whether s starts with 0x or 0X.
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// HasAscii85Delimiters reports whether s starts with <~ and ends with ~>.
func HasAscii85Delimiters(s string) bool {
	return strings.HasPrefix(s, "<~") && strings.HasSuffix(s, "~>")
}

// ContainsPercentEscape reports whether s contains at least one '%'
// followed by two hex digits.
func ContainsPercentEscape(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			return true
		}
	}
	return false
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func isASCIIAlnum(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
