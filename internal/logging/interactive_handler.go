package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/decodeck/decodeck/internal/color"
)

// ErrInteractiveHandlerWriterRequired is returned when no writer is given.
var ErrInteractiveHandlerWriterRequired = errors.New("InteractiveHandler: Writer is required")

// InteractiveHandler writes compact, optionally colored records for a person
// watching a terminal. It is inactive unless Interactive is set, so it can be
// paired with a ConditionalTextHandler on the same writer.
type InteractiveHandler struct {
	writer      io.Writer
	mu          *sync.Mutex
	level       slog.Leveler
	interactive bool
	palette     color.Palette
	hint        string
	attrs       []slog.Attr
	groups      []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	Level       slog.Leveler
	Writer      io.Writer
	Interactive bool          // Writer is a terminal
	Palette     color.Palette // Colors for level labels and hints

	// LogFile and RunID, when set, are named in a hint after error records
	LogFile string
	RunID   string
}

// NewInteractiveHandler creates an InteractiveHandler.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	palette := opts.Palette
	if palette.Error == nil {
		palette = color.NewPalette(false)
	}

	var hint string
	if opts.LogFile != "" {
		hint = "HINT: details in " + opts.LogFile
		if opts.RunID != "" {
			hint += " (run_id " + opts.RunID + ")"
		}
	}

	return &InteractiveHandler{
		writer:      opts.Writer,
		mu:          &sync.Mutex{},
		level:       level,
		interactive: opts.Interactive,
		palette:     palette,
		hint:        hint,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.interactive && level >= h.level.Level()
}

// Handle writes r as "LEVEL message key=value ...".
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.interactive {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(h.formatLevel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	// h.attrs carry the groups that were open when they were added
	for _, attr := range h.attrs {
		appendAttr(&sb, "", attr)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteByte('\n')

	if r.Level >= slog.LevelError && h.hint != "" {
		sb.WriteString(h.palette.Dim(h.hint))
		sb.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

func (h *InteractiveHandler) formatLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.palette.Error("ERROR")
	case level >= slog.LevelWarn:
		return h.palette.Warning("WARN ")
	case level >= slog.LevelInfo:
		return h.palette.Success("INFO ")
	default:
		return h.palette.Dim("DEBUG")
	}
}

// appendAttr writes attr as " key=value", flattening groups into dotted
// keys.
func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			appendAttr(sb, key, member)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	sb.WriteString(value)
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	clone := *h
	prefix := strings.Join(h.groups, ".")
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = make([]string, len(h.groups)+1)
	copy(clone.groups, h.groups)
	clone.groups[len(h.groups)] = name
	return &clone
}
