package encoding

import (
	"strings"
	"unicode"
)

// shortHexLength is the length below which a hex candidate must contain a
// letter, so that plain decimal numbers are not taken for hex.
const shortHexLength = 8

// detectionRule pairs a predicate with the result it yields. trimmed is
// the input with surrounding whitespace removed; cleaned additionally has
// all interior whitespace removed.
type detectionRule struct {
	name    string
	matches func(trimmed, cleaned string) bool
	result  Info
}

// detectionRules is evaluated in order and the first match wins. The order
// is the tie-breaking policy between overlapping alphabets.
var detectionRules = []detectionRule{
	{
		name:    "hex prefix",
		matches: func(trimmed, _ string) bool { return HasHexPrefix(trimmed) },
		result:  DetectedInfo(Hex, High),
	},
	{
		name:    "ascii85 delimiters",
		matches: func(trimmed, _ string) bool { return HasAscii85Delimiters(trimmed) },
		result:  DetectedInfo(Base85, High),
	},
	{
		name:    "percent escape",
		matches: func(trimmed, _ string) bool { return ContainsPercentEscape(trimmed) },
		result:  DetectedInfo(URL, High),
	},
	{
		name:    "hex digits",
		matches: func(_, cleaned string) bool { return isLikelyHex(cleaned) },
		result:  DetectedInfo(Hex, Medium),
	},
	{
		name:    "base32 alphabet",
		matches: func(_, cleaned string) bool { return isLikelyBase32(cleaned) },
		result:  DetectedInfo(Base32, Medium),
	},
}

// fallback is returned when no rule matches. Base64's alphabet is the most
// permissive, so it is the catch-all.
var fallback = DetectedInfo(Base64, Low)

// Detect returns the encoding that most likely produced input. It never
// fails: without a confident match it returns Base64 with Low confidence.
func Detect(input string) Info {
	trimmed := strings.TrimSpace(input)
	cleaned := StripWhitespace(trimmed)

	for _, rule := range detectionRules {
		if rule.matches(trimmed, cleaned) {
			return rule.result
		}
	}
	return fallback
}

// DetectRule returns the name of the rule that Detect would apply to
// input, or "fallback".
func DetectRule(input string) string {
	trimmed := strings.TrimSpace(input)
	cleaned := StripWhitespace(trimmed)

	for _, rule := range detectionRules {
		if rule.matches(trimmed, cleaned) {
			return rule.name
		}
	}
	return "fallback"
}

func isLikelyHex(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}

	hasLetter := strings.IndexFunc(s, unicode.IsLetter) >= 0
	if len(s) >= shortHexLength {
		hasDigit := strings.IndexFunc(s, unicode.IsDigit) >= 0
		return hasLetter || hasDigit
	}
	return hasLetter
}

func isLikelyBase32(s string) bool {
	if s == "" {
		return false
	}
	upper := strings.ToUpper(s)
	for i := 0; i < len(upper); i++ {
		if !isBase32Char(upper[i]) {
			return false
		}
	}
	return !strings.ContainsAny(upper, "0189")
}
