package cli

import (
	"strings"

	"github.com/decodeck/decodeck/internal/scan"
)

// DocumentFormat selects the parser used by the scan command.
type DocumentFormat int

// Document formats
const (
	DocumentAuto DocumentFormat = iota
	DocumentJSON
	DocumentXML
	DocumentYAML
)

func (d DocumentFormat) String() string {
	switch d {
	case DocumentJSON:
		return scan.FormatJSON
	case DocumentXML:
		return scan.FormatXML
	case DocumentYAML:
		return scan.FormatYAML
	default:
		return "auto"
	}
}

// ParseDocumentFormat converts string to DocumentFormat
func ParseDocumentFormat(format string) (DocumentFormat, error) {
	switch strings.ToLower(format) {
	case "auto":
		return DocumentAuto, nil
	case "json":
		return DocumentJSON, nil
	case "xml":
		return DocumentXML, nil
	case "yaml", "yml":
		return DocumentYAML, nil
	default:
		return DocumentAuto, ErrInvalidDocumentFormat
	}
}

// Scan runs the scanner for format over input.
func Scan(format DocumentFormat, input string) (*scan.Result, error) {
	switch format {
	case DocumentJSON:
		return scan.JSON(input)
	case DocumentXML:
		return scan.XML(input)
	case DocumentYAML:
		return scan.YAML(input)
	default:
		return scan.Auto(input)
	}
}
