package main

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/decodeck/decodeck/internal/chain"
	"github.com/decodeck/decodeck/internal/cli"
	"github.com/decodeck/decodeck/internal/decoder"
	"github.com/decodeck/decodeck/internal/encoding"
	"github.com/decodeck/decodeck/internal/output"
)

const (
	binaryWarning   = "decoded content is not valid UTF-8, shown as hex"
	formatFlagUsage = "output format: text, json, cbor (default from config, else text)"
	maxSizeUsage    = "maximum input size, e.g. 100MB"
)

func runDecode(a *app, args []string) error {
	fs := a.flagSet()
	encodingName := fs.StringP("encoding", "e", "", "encoding of DATA: base64, hex, base32, url, base85 (default: auto-detect)")
	formatName := fs.StringP("format", "f", "", formatFlagUsage)
	maxSize := fs.String("max-size", "", maxSizeUsage)
	raw := fs.Bool("raw", false, "write the decoded bytes to stdout instead of a report")

	arg, err := a.parse(fs, args)
	if err != nil {
		return err
	}
	format, err := a.outputFormat(*formatName)
	if err != nil {
		return err
	}
	data, err := a.readText(arg, *maxSize)
	if err != nil {
		return err
	}

	start := time.Now()
	info := encoding.Detect(data)
	if *encodingName != "" {
		t, err := encoding.ParseType(*encodingName)
		if err != nil {
			return err
		}
		info = encoding.ExplicitInfo(t)
	}

	decoded, parsed, err := decode(data, info.Type)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	slog.Debug("Decoded input",
		"encoding", info.Type.String(),
		"confidence", info.Confidence.String(),
		"size", len(decoded),
		"duration", duration)

	if *raw {
		if _, err := a.stdout.Write(decoded); err != nil {
			return cli.NewSystemError(fmt.Errorf("failed to write output: %w", err))
		}
		return nil
	}

	var warnings []string
	if !utf8.Valid(decoded) {
		warnings = append(warnings, binaryWarning)
	}
	return a.report(format, output.NewDecodeReport(decoded, info, parsed, duration, warnings))
}

// decode decodes data as t. Base64 goes through the normalizer so that the
// variant and padding can be reported.
func decode(data string, t encoding.Type) ([]byte, *decoder.EncodedData, error) {
	if t != encoding.Base64 {
		decoded, err := t.Codec().Decode(data)
		return decoded, nil, err
	}

	parsed, err := decoder.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	decoded, err := parsed.Decode()
	if err != nil {
		return nil, nil, err
	}
	return decoded, parsed, nil
}

func runEncode(a *app, args []string) error {
	fs := a.flagSet()
	encodingName := fs.StringP("encoding", "e", "", "encoding to produce: base64, hex, base32, url, base85")
	formatName := fs.StringP("format", "f", "", formatFlagUsage)
	maxSize := fs.String("max-size", "", maxSizeUsage)

	arg, err := a.parse(fs, args)
	if err != nil {
		return err
	}
	if *encodingName == "" {
		return cli.ErrEncodingRequired
	}
	t, err := encoding.ParseType(*encodingName)
	if err != nil {
		return err
	}
	format, err := a.outputFormat(*formatName)
	if err != nil {
		return err
	}
	in, err := a.readInput(arg, *maxSize)
	if err != nil {
		return err
	}

	encoded, err := encoding.Encode(in.Data, t)
	if err != nil {
		return err
	}

	// the encoded value is the essential output, so quiet does not apply
	return a.write(format, output.NewEncodeReport(t, encoded, len(in.Data)))
}

func runDetect(a *app, args []string) error {
	fs := a.flagSet()
	formatName := fs.StringP("format", "f", "", formatFlagUsage)
	maxSize := fs.String("max-size", "", maxSizeUsage)

	arg, err := a.parse(fs, args)
	if err != nil {
		return err
	}
	format, err := a.outputFormat(*formatName)
	if err != nil {
		return err
	}
	data, err := a.readText(arg, *maxSize)
	if err != nil {
		return err
	}

	return a.report(format, output.NewDetectReport(data))
}

func runChain(a *app, args []string) error {
	fs := a.flagSet()
	formatName := fs.StringP("format", "f", "", formatFlagUsage)
	maxSize := fs.String("max-size", "", maxSizeUsage)
	maxDepth := fs.IntP("max-depth", "d", 0, fmt.Sprintf("maximum number of decode rounds (default from config, else %d)", chain.DefaultMaxDepth))

	arg, err := a.parse(fs, args)
	if err != nil {
		return err
	}
	depth := a.cfg.Chain.MaxDepth
	if fs.Changed("max-depth") {
		if err := cli.ValidateMaxDepth(*maxDepth); err != nil {
			return err
		}
		depth = *maxDepth
	}
	format, err := a.outputFormat(*formatName)
	if err != nil {
		return err
	}
	data, err := a.readText(arg, *maxSize)
	if err != nil {
		return err
	}

	result, err := chain.Decode(data, depth)
	if err != nil {
		return err
	}
	return a.report(format, output.NewChainReport(result))
}

func runScan(a *app, args []string) error {
	fs := a.flagSet()
	formatName := fs.StringP("format", "f", "", formatFlagUsage)
	maxSize := fs.String("max-size", "", maxSizeUsage)
	docName := fs.String("doc", "auto", "document format: auto, json, xml, yaml")

	arg, err := a.parse(fs, args)
	if err != nil {
		return err
	}
	doc, err := cli.ParseDocumentFormat(*docName)
	if err != nil {
		return err
	}
	format, err := a.outputFormat(*formatName)
	if err != nil {
		return err
	}
	data, err := a.readText(arg, *maxSize)
	if err != nil {
		return err
	}

	result, err := cli.Scan(doc, data)
	if err != nil {
		return fmt.Errorf("failed to scan %s document: %w", doc, err)
	}
	slog.Debug("Scan completed",
		"format", result.Format,
		"values_scanned", result.ValuesScanned,
		"findings", len(result.Findings))
	return a.report(format, output.NewScanReport(result))
}
