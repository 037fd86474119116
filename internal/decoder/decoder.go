// Package decoder parses and normalizes Base64 input while keeping the
// metadata the generic codec discards: the alphabet variant, whether the
// input carried its own padding, and its original length.
package decoder

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/decodeck/decodeck/internal/encoding"
)

const (
	standardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	urlSafeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="
)

// Variant is a Base64 alphabet.
type Variant int

// Base64 alphabets.
const (
	Standard Variant = iota // A-Za-z0-9+/
	URLSafe                 // A-Za-z0-9-_
)

// String returns the wire token of the variant.
func (v Variant) String() string {
	if v == URLSafe {
		return "url-safe"
	}
	return "standard"
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// DetectVariant returns URLSafe when s contains '-' or '_'.
func DetectVariant(s string) Variant {
	if encoding.IsURLSafeBase64(s) {
		return URLSafe
	}
	return Standard
}

func (v Variant) alphabet() string {
	if v == URLSafe {
		return urlSafeAlphabet
	}
	return standardAlphabet
}

func (v Variant) engine() *base64.Encoding {
	if v == URLSafe {
		return base64.URLEncoding.Strict()
	}
	return base64.StdEncoding.Strict()
}

// EncodedData is normalized Base64: whitespace removed and padded to a
// multiple of four characters.
type EncodedData struct {
	Data           string  // Normalized Base64 text, len(Data)%4 == 0
	Variant        Variant // Alphabet in use
	HasPadding     bool    // Whether the cleaned input already ended in '='
	OriginalLength int     // Length in bytes of the raw input
}

// Parse strips whitespace from input, pads it and validates every
// character against the variant's alphabet. An invalid character yields an
// *encoding.InvalidBase64Error whose Position is its index in the padded
// string.
func Parse(input string) (*EncodedData, error) {
	cleaned := encoding.StripWhitespace(input)
	if cleaned == "" {
		return nil, encoding.ErrNoInput
	}

	variant := DetectVariant(cleaned)
	data := encoding.Pad(cleaned, 4)
	if err := validate(data, variant); err != nil {
		return nil, err
	}

	return &EncodedData{
		Data:           data,
		Variant:        variant,
		HasPadding:     strings.HasSuffix(cleaned, "="),
		OriginalLength: len(input),
	}, nil
}

// validate reports the first character outside the alphabet by character
// offset, not byte offset.
func validate(data string, variant Variant) error {
	alphabet := variant.alphabet()
	position := 0
	for _, r := range data {
		if !strings.ContainsRune(alphabet, r) {
			return &encoding.InvalidBase64Error{
				Message:  fmt.Sprintf("invalid character '%c'", r),
				Position: position,
			}
		}
		position++
	}
	return nil
}

// Decode decodes the normalized data with the variant's alphabet.
func (d *EncodedData) Decode() ([]byte, error) {
	decoded, err := d.Variant.engine().DecodeString(d.Data)
	if err != nil {
		return nil, encoding.NewDecodeError(err, "%v", err)
	}
	return decoded, nil
}
