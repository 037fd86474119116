package output

import (
	"fmt"
	"strings"

	"github.com/decodeck/decodeck/internal/color"
	"github.com/decodeck/decodeck/internal/decoder"
	"github.com/decodeck/decodeck/internal/encoding"
)

// textWriter accumulates "Label: value" lines.
type textWriter struct {
	strings.Builder
	palette color.Palette
}

func newTextWriter(palette color.Palette) *textWriter {
	return &textWriter{palette: palette}
}

func (w *textWriter) field(label, value string) {
	fmt.Fprintf(w, "%s %s\n", w.palette.Label(label+":"), value)
}

func (w *textWriter) content(text *string, hexData string) {
	if text != nil {
		w.field("Content", *text)
		return
	}
	w.field("Hex", hexData)
}

// detectionSuffix renders how the encoding was chosen.
func detectionSuffix(detected bool, confidence encoding.Confidence) string {
	if !detected {
		return " (specified)"
	}
	return fmt.Sprintf(" (auto-detected, %s confidence)", confidence)
}

func (w *textWriter) encodingLine(e EncodingReport) string {
	name := w.palette.Value(e.Type.String())
	if e.Type == encoding.Base64 && e.Variant != nil && e.HadPadding != nil {
		variant := "Standard"
		if *e.Variant == decoder.URLSafe {
			variant = "URL-safe"
		}
		padding := "with padding"
		if !*e.HadPadding {
			padding = "without padding (added)"
		}
		name = fmt.Sprintf("%s %s (%s)", variant, w.palette.Value("Base64"), padding)
	}
	return name + w.palette.Dim(detectionSuffix(e.Detected, e.Confidence))
}

func (r *DecodeReport) writeText(w *textWriter) {
	w.field("Encoding", w.encodingLine(r.Encoding))
	w.field("Size", fmt.Sprintf("%s (%d bytes)", r.SizeFormatted, r.SizeBytes))
	w.content(r.Text, r.Hex)
	if len(r.Warnings) > 0 {
		w.WriteString("\n")
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "%s %s\n", w.palette.Warning("Warning:"), warning)
		}
	}
}

func (r *ChainReport) writeText(w *textWriter) {
	hops := make([]string, 0, len(r.Chain))
	for _, info := range r.Chain {
		hops = append(hops, fmt.Sprintf("%s %s", w.palette.Value(info.Type.String()), w.palette.Dim("("+info.Confidence.String()+")")))
	}
	w.field("Chain", strings.Join(hops, " -> "))

	depth := fmt.Sprintf("%d", len(r.Chain))
	if r.Truncated {
		depth += w.palette.Warning(" (max depth reached)")
	}
	w.field("Depth", depth)
	w.field("Size", fmt.Sprintf("%s (%d bytes)", r.SizeFormatted, r.SizeBytes))
	w.content(r.Text, r.Hex)
}

func (r *ScanReport) writeText(w *textWriter) {
	noun := "findings"
	if len(r.Findings) == 1 {
		noun = "finding"
	}
	fmt.Fprintf(w, "Scanned %d values (%s), %s\n",
		r.ValuesScanned, r.Format, w.palette.Success(fmt.Sprintf("%d %s", len(r.Findings), noun)))

	for _, finding := range r.Findings {
		fmt.Fprintf(w, "\n%s %s %s\n",
			w.palette.Label(finding.Path),
			w.palette.Value(finding.Encoding.String()),
			w.palette.Dim("("+finding.Confidence.String()+")"))
		fmt.Fprintf(w, "  %s -> %s\n", finding.Original, finding.Decoded)
	}
}

func (r *DetectReport) writeText(w *textWriter) {
	w.field("Encoding", w.palette.Value(r.Type.String())+w.palette.Dim(detectionSuffix(r.Detected, r.Confidence)))
	w.field("Rule", r.Rule)
}

func (r *EncodeReport) writeText(w *textWriter) {
	w.WriteString(r.Output)
	w.WriteString("\n")
}
