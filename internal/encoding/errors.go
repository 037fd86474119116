package encoding

import (
	"errors"
	"fmt"
)

// Static errors for common failure cases
var (
	// ErrNoInput indicates the input was empty or blank after cleanup
	ErrNoInput = errors.New("no input data provided")
	// ErrDecodeFailed is matched by every *DecodeError under errors.Is
	ErrDecodeFailed = errors.New("decode failed")
	// ErrInvalidBase64 is matched by every *InvalidBase64Error under errors.Is
	ErrInvalidBase64 = errors.New("invalid base64")
	// ErrUnknownType indicates an encoding name outside the supported set
	ErrUnknownType = errors.New("unknown encoding type")
	// ErrUnknownConfidence indicates a confidence token outside the supported set
	ErrUnknownConfidence = errors.New("unknown confidence level")
)

// DecodeError reports malformed content: alphabet, length or UTF-8
// violations found while decoding.
type DecodeError struct {
	Message string // Human-readable reason
	Err     error  // The underlying error, if any
}

// NewDecodeError builds a DecodeError with a formatted message.
func NewDecodeError(err error, format string, args ...any) *DecodeError {
	return &DecodeError{Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDecodeFailed) hold for any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailed
}

// InvalidBase64Error reports the first character outside the Base64
// alphabet. Position is the 0-indexed character offset into the padded
// string.
type InvalidBase64Error struct {
	Message  string
	Position int
}

func (e *InvalidBase64Error) Error() string {
	return fmt.Sprintf("invalid base64: %s at position %d", e.Message, e.Position)
}

// Is makes errors.Is(err, ErrInvalidBase64) hold for any InvalidBase64Error.
func (e *InvalidBase64Error) Is(target error) bool {
	return target == ErrInvalidBase64
}
