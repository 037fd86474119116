package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/decodeck/decodeck/internal/color"
	"github.com/decodeck/decodeck/internal/safefileio"
	"github.com/oklog/ulid/v2"
)

// schemaVersion is attached to every JSON log record.
const schemaVersion = 1

// File permissions for log files
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// ErrInvalidLogLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level - valid options are: debug, info, warn, error")

// ParseLevel converts a level name to a slog.Level. The empty string is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

// GenerateRunID returns a new ULID identifying one invocation.
func GenerateRunID() string {
	return ulid.Make().String()
}

// Config holds all configuration for logger setup
type Config struct {
	Level   slog.Level
	LogFile string    // Optional path of a JSON log file, appended to
	RunID   string    // Attached to JSON records; generated when empty
	Console io.Writer // Text records; os.Stderr when nil

	// Interactive selects the compact console format for a terminal, colored
	// when Color is set. Otherwise the console gets slog text records.
	Interactive bool
	Color       bool
}

// NewLogger builds a logger that writes records to the console and, when
// cfg.LogFile is set, JSON records enriched with run metadata to the log
// file. The returned close function releases the log file.
func NewLogger(cfg Config) (*slog.Logger, func() error, error) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}
	handlerOptions := &slog.HandlerOptions{Level: cfg.Level}

	runID := cfg.RunID
	if runID == "" {
		runID = GenerateRunID()
	}

	var handlers []slog.Handler
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		logF, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		closeFn = logF.Close

		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		// the file record is written before the console hint that points to it
		jsonHandler := slog.NewJSONHandler(logF, handlerOptions).WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", schemaVersion),
			slog.String("run_id", runID),
		})
		handlers = append(handlers, jsonHandler)
	}

	interactiveHandler, err := NewInteractiveHandler(InteractiveHandlerOptions{
		Level:       cfg.Level,
		Writer:      console,
		Interactive: cfg.Interactive,
		Palette:     color.NewPalette(cfg.Color),
		LogFile:     cfg.LogFile,
		RunID:       runID,
	})
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	textHandler, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		Interactive:        cfg.Interactive,
		TextHandlerOptions: handlerOptions,
		Writer:             console,
	})
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	handlers = append(handlers, interactiveHandler, textHandler)

	return slog.New(NewMultiHandler(handlers...)), closeFn, nil
}

// Setup builds a logger with NewLogger and installs it as the slog default.
func Setup(cfg Config) (func() error, error) {
	logger, closeFn, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	slog.Debug("Logger initialized",
		"level", cfg.Level.String(),
		"log_file", cfg.LogFile)
	return closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	logF, err := safefileio.OpenAppend(path, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logF, nil
}
