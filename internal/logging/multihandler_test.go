package logging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test errors
var (
	errHandler1 = errors.New("handler1 error")
	errHandler2 = errors.New("handler2 error")
)

// mockHandler is a test implementation of slog.Handler
type mockHandler struct {
	mu          sync.Mutex
	enabled     bool
	records     []slog.Record
	attrs       []slog.Attr
	groups      []string
	handleError error
}

func newMockHandler(enabled bool) *mockHandler {
	return &mockHandler{enabled: enabled}
}

func (m *mockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return m.enabled
}

func (m *mockHandler) Handle(_ context.Context, r slog.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handleError != nil {
		return m.handleError
	}
	m.records = append(m.records, r.Clone())
	return nil
}

func (m *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &mockHandler{
		enabled:     m.enabled,
		attrs:       append(append([]slog.Attr{}, m.attrs...), attrs...),
		groups:      m.groups,
		handleError: m.handleError,
	}
}

func (m *mockHandler) WithGroup(name string) slog.Handler {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &mockHandler{
		enabled:     m.enabled,
		attrs:       m.attrs,
		groups:      append(append([]string{}, m.groups...), name),
		handleError: m.handleError,
	}
}

func (m *mockHandler) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func TestNewMultiHandlerDropsNil(t *testing.T) {
	multi := NewMultiHandler(newMockHandler(true), nil, newMockHandler(false))
	assert.Len(t, multi.Handlers(), 2)
}

func TestMultiHandler_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		handlers []slog.Handler
		expected bool
	}{
		{
			name:     "at least one handler enabled",
			handlers: []slog.Handler{newMockHandler(false), newMockHandler(true)},
			expected: true,
		},
		{
			name:     "no handlers enabled",
			handlers: []slog.Handler{newMockHandler(false), newMockHandler(false)},
			expected: false,
		},
		{
			name:     "no handlers",
			handlers: []slog.Handler{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multi := NewMultiHandler(tt.handlers...)
			assert.Equal(t, tt.expected, multi.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestMultiHandler_Handle(t *testing.T) {
	handler1 := newMockHandler(true)
	handler2 := newMockHandler(true)
	disabled := newMockHandler(false)

	multi := NewMultiHandler(handler1, handler2, disabled)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	require.NoError(t, multi.Handle(context.Background(), record))

	assert.Equal(t, 1, handler1.recordCount())
	assert.Equal(t, 1, handler2.recordCount())
	assert.Equal(t, 0, disabled.recordCount())
}

func TestMultiHandler_HandleWithErrors(t *testing.T) {
	handler1 := newMockHandler(true)
	handler1.handleError = errHandler1
	handler2 := newMockHandler(true)
	handler2.handleError = errHandler2
	healthy := newMockHandler(true)

	multi := NewMultiHandler(handler1, healthy, handler2)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	err := multi.Handle(context.Background(), record)

	require.Error(t, err)
	assert.ErrorIs(t, err, errHandler1)
	assert.ErrorIs(t, err, errHandler2)
	assert.Equal(t, 1, healthy.recordCount())
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	handler := newMockHandler(true)
	multi := NewMultiHandler(handler)

	withAttrs := multi.WithAttrs([]slog.Attr{slog.String("run_id", "x")}).(*MultiHandler)
	require.Len(t, withAttrs.handlers, 1)
	assert.Len(t, withAttrs.handlers[0].(*mockHandler).attrs, 1)
	assert.Empty(t, handler.attrs)

	withGroup := withAttrs.WithGroup("chain").(*MultiHandler)
	assert.Equal(t, []string{"chain"}, withGroup.handlers[0].(*mockHandler).groups)
}

func TestMultiHandler_ConcurrentHandle(t *testing.T) {
	handler := newMockHandler(true)
	multi := NewMultiHandler(handler)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
			assert.NoError(t, multi.Handle(context.Background(), record))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, handler.recordCount())
}
