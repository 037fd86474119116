// Package output builds the reports decodeck prints and renders them as
// text, JSON or CBOR.
package output

import (
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/decodeck/decodeck/internal/chain"
	"github.com/decodeck/decodeck/internal/decoder"
	"github.com/decodeck/decodeck/internal/encoding"
	"github.com/decodeck/decodeck/internal/scan"
)

// Report is implemented by every report type in this package.
type Report interface {
	writeText(w *textWriter)
}

// EncodingReport describes the encoding a decode used. Variant and
// HadPadding are only set for Base64 input that went through the
// normalizer.
type EncodingReport struct {
	Type       encoding.Type       `json:"type"`
	Detected   bool                `json:"detected"`
	Confidence encoding.Confidence `json:"confidence"`
	Variant    *decoder.Variant    `json:"variant,omitempty"`
	HadPadding *bool               `json:"had_padding,omitempty"`
}

// DecodeReport is the result of a single decode.
type DecodeReport struct {
	Success       bool           `json:"success"`
	SizeBytes     int            `json:"size_bytes"`
	SizeFormatted string         `json:"size_formatted"`
	Encoding      EncodingReport `json:"encoding"`
	Text          *string        `json:"text,omitempty"`
	Hex           string         `json:"hex,omitempty"`
	DurationMs    int64          `json:"duration_ms"`
	Warnings      []string       `json:"warnings"`
}

// NewDecodeReport builds a DecodeReport. parsed may be nil.
func NewDecodeReport(data []byte, info encoding.Info, parsed *decoder.EncodedData, duration time.Duration, warnings []string) *DecodeReport {
	report := &DecodeReport{
		Success:       true,
		SizeBytes:     len(data),
		SizeFormatted: FormatSize(len(data)),
		Encoding: EncodingReport{
			Type:       info.Type,
			Detected:   info.Detected,
			Confidence: info.Confidence,
		},
		DurationMs: duration.Milliseconds(),
		Warnings:   warnings,
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}
	if parsed != nil {
		variant := parsed.Variant
		hadPadding := parsed.HasPadding
		report.Encoding.Variant = &variant
		report.Encoding.HadPadding = &hadPadding
	}
	report.Text, report.Hex = content(data)
	return report
}

// ChainReport is the result of a chain decode.
type ChainReport struct {
	Success       bool            `json:"success"`
	SizeBytes     int             `json:"size_bytes"`
	SizeFormatted string          `json:"size_formatted"`
	Chain         []encoding.Info `json:"chain"`
	Truncated     bool            `json:"truncated"`
	Text          *string         `json:"text,omitempty"`
	Hex           string          `json:"hex,omitempty"`
}

// NewChainReport builds a ChainReport from a chain result.
func NewChainReport(result *chain.Result) *ChainReport {
	report := &ChainReport{
		Success:       true,
		SizeBytes:     len(result.Data),
		SizeFormatted: FormatSize(len(result.Data)),
		Chain:         result.Chain,
		Truncated:     result.Truncated,
	}
	if report.Chain == nil {
		report.Chain = []encoding.Info{}
	}
	report.Text, report.Hex = content(result.Data)
	return report
}

// ScanReport is a scan result.
type ScanReport scan.Result

// NewScanReport wraps a scan result.
func NewScanReport(result *scan.Result) *ScanReport {
	return (*ScanReport)(result)
}

// DetectReport is the result of encoding detection.
type DetectReport struct {
	Type       encoding.Type       `json:"type"`
	Detected   bool                `json:"detected"`
	Confidence encoding.Confidence `json:"confidence"`
	Rule       string              `json:"rule"`
}

// NewDetectReport runs detection on input and reports the matching rule.
func NewDetectReport(input string) *DetectReport {
	info := encoding.Detect(input)
	return &DetectReport{
		Type:       info.Type,
		Detected:   info.Detected,
		Confidence: info.Confidence,
		Rule:       encoding.DetectRule(input),
	}
}

// EncodeReport is the result of encoding data.
type EncodeReport struct {
	Encoding  encoding.Type `json:"encoding"`
	Output    string        `json:"output"`
	SizeBytes int           `json:"size_bytes"`
}

// NewEncodeReport builds an EncodeReport; SizeBytes is the input size.
func NewEncodeReport(t encoding.Type, encoded string, inputSize int) *EncodeReport {
	return &EncodeReport{Encoding: t, Output: encoded, SizeBytes: inputSize}
}

// content splits decoded bytes into a text or a hex rendering.
func content(data []byte) (*string, string) {
	if utf8.Valid(data) {
		text := string(data)
		return &text, ""
	}
	return nil, hex.EncodeToString(data)
}
