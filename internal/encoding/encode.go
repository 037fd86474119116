package encoding

import (
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// Encode encodes data with the given encoding. Base64 and Base32 use the
// padded standard alphabets, hex is lowercase, Ascii85 output is wrapped in
// <~ ~>. URL encoding requires data to be valid UTF-8.
func Encode(data []byte, t Type) (string, error) {
	switch t {
	case Base64:
		return base64.StdEncoding.EncodeToString(data), nil
	case Hex:
		return hex.EncodeToString(data), nil
	case Base32:
		return base32.StdEncoding.EncodeToString(data), nil
	case URL:
		return encodeURL(data)
	case Base85:
		return encodeBase85(data), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// encodeURL percent-escapes every byte that is not an ASCII letter or digit.
func encodeURL(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", NewDecodeError(nil, "URL encoding requires valid UTF-8")
	}

	var builder strings.Builder
	builder.Grow(len(data) * 3)
	for _, b := range data {
		if isASCIIAlnum(b) {
			builder.WriteByte(b)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[b>>4])
		builder.WriteByte(upperHex[b&0x0f])
	}
	return builder.String(), nil
}

func encodeBase85(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return ascii85Open + string(dst[:n]) + ascii85Close
}
