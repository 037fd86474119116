package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "100MB", want: 100 * MB},
		{input: "100mb", want: 100 * MB},
		{input: "1GB", want: GB},
		{input: "1.5KB", want: 1536},
		{input: "512B", want: 512},
		{input: "2048", want: 2048},
		{input: " 10 MB ", want: 10 * MB},
		{input: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "MB", "abc", "-5MB", "1.2.3KB", "10TB", "inf", "+InfMB", "NaN", "1e30GB", "9223372036854775808"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "512B", FormatShort(512))
	assert.Equal(t, "1.5KB", FormatShort(1536))
	assert.Equal(t, "100.0MB", FormatShort(100*MB))
	assert.Equal(t, "2.0GB", FormatShort(2*GB))
}

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		stdin  string
		source Source
		want   string
	}{
		{name: "argument wins", arg: "SGVsbG8=", stdin: "ignored", source: SourceArg, want: "SGVsbG8="},
		{name: "stdin when no argument", stdin: "SGVsbG8=\n", source: SourceStdin, want: "SGVsbG8=\n"},
		{name: "dash reads stdin", arg: StdinArg, stdin: "abc", source: SourceStdin, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Read(tt.arg, strings.NewReader(tt.stdin), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.source, in.Source)
			assert.Equal(t, tt.want, string(in.Data))
		})
	}
}

func TestReadNoInput(t *testing.T) {
	_, err := Read("", nil, 0)
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = Read("", strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestReadSizeLimit(t *testing.T) {
	in, err := Read("", strings.NewReader("abcd"), 4)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(in.Data))

	_, err = Read("", strings.NewReader("abcde"), 4)
	var exceeded *SizeExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, int64(4), exceeded.Limit)
	assert.Equal(t, "input size 5B exceeds limit 4B", exceeded.Error())

	_, err = Read("abcdef", nil, 4)
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, int64(6), exceeded.Actual)
}

func TestReadStdinError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	_, err := Read("", iotest.ErrReader(errBroken), 0)
	assert.ErrorIs(t, err, errBroken)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "argument", SourceArg.String())
	assert.Equal(t, "stdin", SourceStdin.String())
}
