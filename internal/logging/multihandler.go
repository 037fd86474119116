// Package logging configures log/slog for decodeck: human-readable records
// on stderr and, optionally, machine-readable JSON records in a log file,
// fanned out through a MultiHandler.
package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler is a slog.Handler that dispatches each record to every
// enabled handler it wraps.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler wraps handlers. Nil handlers are dropped.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	kept := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			kept = append(kept, h)
		}
	}
	return &MultiHandler{handlers: kept}
}

// Enabled reports whether at least one wrapped handler handles level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes a clone of r to every enabled handler and joins their
// errors.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Handlers returns a copy of the underlying handlers slice
func (h *MultiHandler) Handlers() []slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	copy(handlers, h.handlers)
	return handlers
}

// WithAttrs returns a new MultiHandler whose handlers have the given attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

// WithGroup returns a new MultiHandler whose handlers have the given group name.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	derived := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		derived[i] = fn(handler)
	}
	return &MultiHandler{handlers: derived}
}
