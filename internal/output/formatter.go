package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/decodeck/decodeck/internal/color"
	"github.com/fxamacker/cbor/v2"
)

// Format is a report rendering.
type Format int

// Report formats
const (
	FormatText Format = iota
	FormatJSON
	FormatCBOR
)

// String returns the format token.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return "text"
	}
}

// ErrNilReport is returned when a formatter is given no report.
var ErrNilReport = errors.New("report cannot be nil")

// cborEncMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// report always produces identical bytes. Types implementing
// encoding.TextMarshaler serialize as CBOR text strings.
var cborEncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	options.TextMarshaler = cbor.TextMarshalerTextString
	mode, err := options.EncMode()
	if err != nil {
		panic("output: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}()

// Formatter renders a report.
type Formatter interface {
	Format(report Report) ([]byte, error)
}

// TextFormatter renders human-readable text.
type TextFormatter struct {
	palette color.Palette
}

// JSONFormatter renders indented JSON.
type JSONFormatter struct{}

// CBORFormatter renders deterministic CBOR.
type CBORFormatter struct{}

// NewTextFormatter creates a text formatter using palette.
func NewTextFormatter(palette color.Palette) *TextFormatter {
	return &TextFormatter{palette: palette}
}

// NewFormatter returns the formatter for format. Color only applies to text.
func NewFormatter(format Format, palette color.Palette) Formatter {
	switch format {
	case FormatJSON:
		return JSONFormatter{}
	case FormatCBOR:
		return CBORFormatter{}
	default:
		return NewTextFormatter(palette)
	}
}

// Format renders report as text.
func (f *TextFormatter) Format(report Report) ([]byte, error) {
	if report == nil {
		return nil, ErrNilReport
	}
	w := newTextWriter(f.palette)
	report.writeText(w)
	return []byte(w.String()), nil
}

// Format renders report as JSON with a trailing newline.
func (JSONFormatter) Format(report Report) ([]byte, error) {
	if report == nil {
		return nil, ErrNilReport
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Format renders report as CBOR.
func (CBORFormatter) Format(report Report) ([]byte, error) {
	if report == nil {
		return nil, ErrNilReport
	}
	data, err := cborEncMode.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CBOR: %w", err)
	}
	return data, nil
}

// Write formats report and writes it to w.
func Write(w io.Writer, f Formatter, report Report) error {
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
