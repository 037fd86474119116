// Package chain peels layered encodings off a value, e.g. Base64 wrapped
// around hex, by repeatedly applying detection and decoding until the
// result no longer looks encoded or the depth bound is reached.
package chain

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/decodeck/decodeck/internal/encoding"
)

// DefaultMaxDepth is the number of decode rounds used when the caller
// does not specify one.
const DefaultMaxDepth = 10

const (
	// minEncodedLength is the shortest trimmed string considered for
	// another hop.
	minEncodedLength = 4
	// encodedCharRatio is the share of encoding-alphabet characters above
	// which a string is considered for another hop.
	encodedCharRatio = 0.9
)

// Result is the outcome of a chain decode. Chain lists the encodings in
// the order they were removed.
type Result struct {
	Data      []byte
	Chain     []encoding.Info
	Truncated bool
}

// Decode resolves nested encodings in input using at most maxDepth rounds.
// maxDepth <= 0 selects DefaultMaxDepth.
//
// Only a failure of the very first decode is returned as an error. Later
// failures end the chain and the best result so far is returned.
func Decode(input string, maxDepth int) (*Result, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	current := input
	var chain []encoding.Info

	for depth := 0; depth < maxDepth; depth++ {
		info := encoding.Detect(current)

		// A low-confidence guess on a derived value means no further encoding.
		if depth > 0 && info.Confidence == encoding.Low {
			break
		}

		data, err := info.Type.Codec().Decode(current)
		if err != nil {
			if len(chain) == 0 {
				return nil, encoding.NewDecodeError(err, "failed to decode input")
			}
			slog.Debug("Chain decode failed, keeping previous result",
				"depth", depth,
				"encoding", info.Type.String(),
				"error", err)
			break
		}

		valid := utf8.Valid(data)

		// Plain words pass the Base32 alphabet test. Text is kept as the
		// answer when that guess turns it into binary.
		if depth > 0 && !valid && info.Type == encoding.Base32 {
			slog.Debug("Chain stopped at text result",
				"depth", depth,
				"rejected_encoding", info.Type.String())
			return newResult([]byte(current), chain, maxDepth), nil
		}

		chain = append(chain, info)
		slog.Debug("Chain hop decoded",
			"depth", depth,
			"encoding", info.Type.String(),
			"confidence", info.Confidence.String(),
			"size", len(data))

		if valid && depth+1 < maxDepth && CouldBeEncoded(string(data)) {
			current = string(data)
			continue
		}
		return newResult(data, chain, maxDepth), nil
	}

	return finish(current, chain, maxDepth), nil
}

// finish runs one last detect and decode on current after the loop ended
// early. When that fails too, current itself is the result.
func finish(current string, chain []encoding.Info, maxDepth int) *Result {
	info := encoding.Detect(current)
	data, err := info.Type.Codec().Decode(current)
	if err != nil {
		return newResult([]byte(current), chain, maxDepth)
	}

	if len(chain) == 0 || chain[len(chain)-1].Type != info.Type {
		chain = append(chain, info)
	}
	return newResult(data, chain, maxDepth)
}

func newResult(data []byte, chain []encoding.Info, maxDepth int) *Result {
	return &Result{
		Data:      data,
		Chain:     chain,
		Truncated: len(chain) >= maxDepth,
	}
}

// CouldBeEncoded reports whether s looks like it may hold another layer of
// encoding: at least four characters after trimming, and either an
// encoding marker (0x prefix, <~ ~> delimiters, a %XX escape) or more than
// 90% of its characters drawn from alphanumerics and "=+/".
func CouldBeEncoded(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < minEncodedLength {
		return false
	}

	if encoding.HasHexPrefix(trimmed) ||
		encoding.HasAscii85Delimiters(trimmed) ||
		encoding.ContainsPercentEscape(trimmed) {
		return true
	}

	valid := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '=' || r == '+' || r == '/' {
			valid++
		}
	}
	return float64(valid)/float64(len(trimmed)) > encodedCharRatio
}
