// Package encoding provides decoding, encoding and auto-detection for the
// five text encodings decodeck understands: Base64, hexadecimal, Base32,
// URL percent-encoding and Ascii85.
//
// Every operation is a pure function of its input. Nothing in this package
// keeps state between calls, so all functions are safe for concurrent use.
//
// Example Usage:
//
//	info := encoding.Detect("0x48656c6c6f")
//	data, err := info.Type.Codec().Decode("0x48656c6c6f")
//	if err != nil {
//	    // Handle error
//	}
//	// data == []byte("Hello")
package encoding

import (
	"fmt"
	"strings"
)

// Type identifies one of the supported encodings.
type Type int

// Supported encoding types. The set is closed.
const (
	Base64 Type = iota // Standard or URL-safe Base64 (RFC 4648)
	Hex                // Hexadecimal
	Base32             // Base32 (RFC 4648)
	URL                // URL percent-encoding (RFC 3986)
	Base85             // Ascii85 (Adobe variant)
)

// AllTypes lists every supported encoding in declaration order.
var AllTypes = []Type{Base64, Hex, Base32, URL, Base85}

var typeNames = map[Type]string{
	Base64: "base64",
	Hex:    "hex",
	Base32: "base32",
	URL:    "url",
	Base85: "base85",
}

// String returns the lowercase wire token of the encoding.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler using the wire token.
func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType converts a wire token (case-insensitive) to a Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Confidence ranks how certain a detection is. Lower values are more
// certain: Explicit > High > Medium > Low.
type Confidence int

// Confidence levels, ordered from most to least certain.
const (
	Explicit Confidence = iota // Caller specified the encoding
	High                       // Unambiguous marker such as a 0x prefix
	Medium                     // Character-class analysis
	Low                        // Fallback default
)

var confidenceNames = map[Confidence]string{
	Explicit: "explicit",
	High:     "high",
	Medium:   "medium",
	Low:      "low",
}

// String returns the lowercase wire token of the confidence level.
func (c Confidence) String() string {
	if name, ok := confidenceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Confidence(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler using the wire token.
func (c Confidence) MarshalText() ([]byte, error) {
	if _, ok := confidenceNames[c]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownConfidence, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for level, n := range confidenceNames {
		if n == name {
			*c = level
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownConfidence, string(text))
}

// AtLeast reports whether c is as certain as other or more.
func (c Confidence) AtLeast(other Confidence) bool {
	return c <= other
}

// Info describes which encoding applies to an input and how it was chosen.
// Detected is false exactly when Confidence is Explicit.
type Info struct {
	Type       Type       `json:"type"`
	Detected   bool       `json:"detected"`
	Confidence Confidence `json:"confidence"`
}

// ExplicitInfo returns the Info for an encoding the caller specified.
func ExplicitInfo(t Type) Info {
	return Info{Type: t, Detected: false, Confidence: Explicit}
}

// DetectedInfo returns the Info for an auto-detected encoding.
func DetectedInfo(t Type, c Confidence) Info {
	return Info{Type: t, Detected: true, Confidence: c}
}
