// Package cli provides command-line parsing helpers and exit code mapping
// for the decodeck command.
package cli

import (
	"errors"
)

// Error definitions
var (
	ErrInvalidOutputFormat   = errors.New("invalid output format - valid options are: text, json, cbor")
	ErrInvalidColorMode      = errors.New("invalid color mode - valid options are: auto, always, never")
	ErrInvalidDocumentFormat = errors.New("invalid document format - valid options are: auto, json, xml, yaml")
	ErrInvalidMaxDepth       = errors.New("max depth must be at least 1")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrEncodingRequired      = errors.New("an encoding must be given with -e")
	ErrTooManyArguments      = errors.New("too many arguments")
)
