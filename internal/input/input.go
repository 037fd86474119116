// Package input acquires the data decodeck operates on, from a command-line
// argument or standard input, and enforces the size limit.
package input

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/decodeck/decodeck/internal/encoding"
)

// StdinArg as the data argument forces reading standard input.
const StdinArg = "-"

// Size units
const (
	KB int64 = 1024
	MB       = 1024 * KB
	GB       = 1024 * MB
)

// Static errors
var (
	// ErrNoInput is shared with the codecs so callers test a single sentinel
	ErrNoInput = encoding.ErrNoInput
	// ErrInvalidSize indicates a size string ParseSize cannot read
	ErrInvalidSize = errors.New("invalid size format")
)

// SizeExceededError reports input larger than the configured limit.
type SizeExceededError struct {
	Actual int64 // A lower bound when reading stdin
	Limit  int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("input size %s exceeds limit %s", FormatShort(e.Actual), FormatShort(e.Limit))
}

// Source identifies where input came from.
type Source int

// Input sources
const (
	SourceArg Source = iota
	SourceStdin
)

func (s Source) String() string {
	if s == SourceStdin {
		return "stdin"
	}
	return "argument"
}

// Input is the raw data handed to the decoders.
type Input struct {
	Data   []byte
	Source Source
}

// ParseSize parses sizes such as "100MB", "1.5gb", "512KB", "10B" or a bare
// byte count. Units are binary multiples.
func ParseSize(size string) (int64, error) {
	upper := strings.ToUpper(strings.TrimSpace(size))

	multiplier := int64(1)
	number := upper
	for _, unit := range []struct {
		suffix string
		value  int64
	}{{"GB", GB}, {"MB", MB}, {"KB", KB}, {"B", 1}} {
		if strings.HasSuffix(upper, unit.suffix) {
			number = strings.TrimSuffix(upper, unit.suffix)
			multiplier = unit.value
			break
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	total := value * float64(multiplier)
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q exceeds the largest supported size", ErrInvalidSize, size)
	}
	return int64(total), nil
}

// FormatShort renders a byte count compactly, e.g. "1.5MB" or "512B".
func FormatShort(n int64) string {
	switch {
	case n >= GB:
		return fmt.Sprintf("%.1fGB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.1fMB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.1fKB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// Read returns arg when it is non-empty and not StdinArg. Otherwise it
// reads stdin, which may be nil when no data is piped in. limit <= 0
// disables the size check.
func Read(arg string, stdin io.Reader, limit int64) (*Input, error) {
	if arg != "" && arg != StdinArg {
		if limit > 0 && int64(len(arg)) > limit {
			return nil, &SizeExceededError{Actual: int64(len(arg)), Limit: limit}
		}
		return &Input{Data: []byte(arg), Source: SourceArg}, nil
	}

	if stdin == nil {
		return nil, ErrNoInput
	}

	reader := stdin
	if limit > 0 {
		// one extra byte tells an exact fit from an overflow
		reader = io.LimitReader(stdin, limit+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoInput
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, &SizeExceededError{Actual: int64(len(data)), Limit: limit}
	}
	return &Input{Data: data, Source: SourceStdin}, nil
}
