package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		typ        Type
		confidence Confidence
	}{
		{name: "hex with prefix", input: "0x48656c6c6f", typ: Hex, confidence: High},
		{name: "hex with upper prefix and spaces", input: "  0X41 ", typ: Hex, confidence: High},
		{name: "ascii85 delimiters", input: "<~87cURD]j~>", typ: Base85, confidence: High},
		{name: "percent escape", input: "Hello%20World", typ: URL, confidence: High},
		{name: "hex without prefix", input: "48656c6c6f", typ: Hex, confidence: Medium},
		{name: "long decimal run passes length gate", input: "12345678", typ: Hex, confidence: Medium},
		{name: "short decimal run is not hex", input: "1234", typ: Base64, confidence: Low},
		{name: "short hex with a letter", input: "abcd", typ: Hex, confidence: Medium},
		{name: "hex with interior spaces", input: "ab cd ef", typ: Hex, confidence: Medium},
		{name: "hex letters beat base32", input: "ABCDEF", typ: Hex, confidence: Medium},
		{name: "odd length falls to base32", input: "ABCDE", typ: Base32, confidence: Medium},
		{name: "base32", input: "JBSWY3DP", typ: Base32, confidence: Medium},
		{name: "base32 lowercase", input: "jbswy3dp", typ: Base32, confidence: Medium},
		{name: "base64 default", input: "SGVsbG8=", typ: Base64, confidence: Low},
		{name: "empty input", input: "", typ: Base64, confidence: Low},
		{name: "prefix beats percent", input: "0x%41", typ: Hex, confidence: High},
		{name: "delimiters beat percent", input: "<~%41~>", typ: Base85, confidence: High},
		{name: "percent beats hex digits", input: "deadbeef%20", typ: URL, confidence: High},
		{name: "lone percent is not url", input: "100%", typ: Base64, confidence: Low},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := Detect(tc.input)
			assert.Equal(t, tc.typ, info.Type)
			assert.Equal(t, tc.confidence, info.Confidence)
			assert.True(t, info.Detected)
		})
	}
}

func TestDetectRule(t *testing.T) {
	assert.Equal(t, "hex prefix", DetectRule("0x41"))
	assert.Equal(t, "ascii85 delimiters", DetectRule("<~FCfN8~>"))
	assert.Equal(t, "percent escape", DetectRule("a%2Fb"))
	assert.Equal(t, "hex digits", DetectRule("cafe"))
	assert.Equal(t, "base32 alphabet", DetectRule("MZXW6"))
	assert.Equal(t, "fallback", DetectRule("SGVsbG8="))
}

func TestContainsPercentEscape(t *testing.T) {
	assert.True(t, ContainsPercentEscape("%41"))
	assert.True(t, ContainsPercentEscape("a%2fb"))
	assert.False(t, ContainsPercentEscape("%4"))
	assert.False(t, ContainsPercentEscape("%g1"))
	assert.False(t, ContainsPercentEscape(""))
}
