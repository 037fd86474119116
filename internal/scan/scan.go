// Package scan walks structured documents (JSON, XML and YAML) and reports
// every leaf value that decodes under a confidently detected encoding.
//
// A malformed document fails the whole scan. A leaf value that fails to
// decode is not an error; it simply produces no finding.
package scan

import (
	"encoding/hex"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/decodeck/decodeck/internal/encoding"
)

// Document format tokens reported in Result.Format.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// minValueLength is the shortest trimmed value worth decoding.
const minValueLength = 4

// Finding is one decoded value located inside a document.
type Finding struct {
	Path       string              `json:"path"`
	Original   string              `json:"original"`
	Decoded    string              `json:"decoded"`
	Encoding   encoding.Type       `json:"encoding"`
	Confidence encoding.Confidence `json:"confidence"`
	IsText     bool                `json:"is_text"`
}

// Result collects the findings of one scan in document order.
type Result struct {
	Findings      []Finding `json:"findings"`
	ValuesScanned int       `json:"values_scanned"`
	Format        string    `json:"format"`
}

// collector accumulates findings while a document is traversed.
type collector struct {
	findings []Finding
	scanned  int
}

func (c *collector) visit(value, path string) {
	c.scanned++
	if finding, ok := tryDecodeValue(value, path); ok {
		c.findings = append(c.findings, finding)
	}
}

func (c *collector) result(format string) *Result {
	findings := c.findings
	if findings == nil {
		findings = []Finding{}
	}
	return &Result{Findings: findings, ValuesScanned: c.scanned, Format: format}
}

// tryDecodeValue decodes value when it is long enough and detected with
// better than Low confidence. Binary results are rendered as hex.
func tryDecodeValue(value, path string) (Finding, bool) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < minValueLength {
		return Finding{}, false
	}

	// Low is the Base64 catch-all; reporting it would flag ordinary words.
	info := encoding.Detect(trimmed)
	if info.Confidence == encoding.Low {
		return Finding{}, false
	}

	data, err := info.Type.Codec().Decode(trimmed)
	if err != nil {
		slog.Debug("Skipping value that failed to decode",
			"path", path,
			"encoding", info.Type.String(),
			"error", err)
		return Finding{}, false
	}

	finding := Finding{
		Path:       path,
		Original:   trimmed,
		Encoding:   info.Type,
		Confidence: info.Confidence,
	}
	if utf8.Valid(data) {
		finding.Decoded = string(data)
		finding.IsText = true
	} else {
		finding.Decoded = "(binary: " + hex.EncodeToString(data) + ")"
	}
	return finding, true
}

// Auto picks the parser from the first non-blank character: '{' or '['
// tries JSON, '<' tries XML. When the preferred parser fails, or nothing
// matches, the document is parsed as JSON.
func Auto(input string) (*Result, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if result, err := JSON(input); err == nil {
			return result, nil
		}
	}

	if strings.HasPrefix(trimmed, "<") {
		if result, err := XML(input); err == nil {
			return result, nil
		}
	}

	return JSON(input)
}
