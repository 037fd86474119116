package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/decodeck/decodeck/internal/cli"
	"github.com/decodeck/decodeck/internal/color"
	"github.com/decodeck/decodeck/internal/config"
	"github.com/decodeck/decodeck/internal/input"
	"github.com/decodeck/decodeck/internal/logging"
	"github.com/decodeck/decodeck/internal/output"
	"github.com/decodeck/decodeck/internal/terminal"
	"github.com/spf13/pflag"
)

var (
	errQuietVerbose = errors.New("--quiet and --verbose cannot be combined")
	errInputNotUTF8 = errors.New("input is not valid UTF-8")
)

// globalOptions are accepted by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFile    string
	color      string
	quiet      bool
	verbose    bool
}

func (o *globalOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to a TOML config file (default: $DECODECK_CONFIG or ./decodeck.toml)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "append JSON log records to this file")
	fs.StringVar(&o.color, "color", "", "colored output: auto, always, never")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "suppress text reports and informational logs")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

// app carries the streams and resolved settings of one invocation.
type app struct {
	cmd    command
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	global   globalOptions
	cfg      *config.Config
	palette  color.Palette
	closeLog func() error
}

func newApp(cmd command, stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// flagSet returns a flag set for the command with the global flags
// registered.
func (a *app) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(a.cmd.name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(a.stderr, "Usage: decodeck %s\n\n%s\n\nFlags:\n", a.cmd.usage, a.cmd.summary)
		fs.PrintDefaults()
	}
	a.global.addFlags(fs)
	return fs
}

// parse parses args, loads configuration and installs the logger. It
// returns the optional positional argument.
func (a *app) parse(fs *pflag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	positional := fs.Args()
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: expected at most one, got %d", cli.ErrTooManyArguments, len(positional))
	}
	if a.global.quiet && a.global.verbose {
		return "", errQuietVerbose
	}

	cfg, path, err := config.Load(a.global.configPath)
	if err != nil {
		return "", err
	}
	a.cfg = cfg

	colorName := a.cfg.Output.Color
	if a.global.color != "" {
		colorName = a.global.color
	}
	mode, err := cli.ParseColorMode(colorName)
	if err != nil {
		return "", err
	}
	a.palette = color.NewPalette(colorEnabled(mode, a.stdout))

	if err := a.setupLogging(mode); err != nil {
		return "", cli.NewSystemError(err)
	}
	if path != "" {
		slog.Debug("Configuration loaded", "path", path)
	}

	if len(positional) == 1 {
		return positional[0], nil
	}
	return "", nil
}

func (a *app) setupLogging(mode terminal.ColorMode) error {
	levelName := a.cfg.Log.Level
	if a.global.logLevel != "" {
		levelName = a.global.logLevel
	}
	level, levelErr := logging.ParseLevel(levelName)
	switch {
	case a.global.verbose:
		level = slog.LevelDebug
	case a.global.quiet:
		level = slog.LevelError
	}

	logFile := a.cfg.Log.File
	if a.global.logFile != "" {
		logFile = a.global.logFile
	}

	closeFn, err := logging.Setup(logging.Config{
		Level:   level,
		LogFile: logFile,
		RunID:   logging.GenerateRunID(),
		Console: a.stderr,

		Interactive: isTerminal(a.stderr),
		Color:       colorEnabled(mode, a.stderr),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.closeLog = closeFn

	if levelErr != nil {
		slog.Warn("Invalid log level, using info", "error", levelErr)
	}
	return nil
}

func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil {
		_, _ = fmt.Fprintf(a.stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// readInput acquires the command's data, enforcing the size limit.
func (a *app) readInput(arg, maxSizeFlag string) (*input.Input, error) {
	maxSize := a.cfg.Input.MaxSize
	if maxSizeFlag != "" {
		maxSize = maxSizeFlag
	}
	limit, err := input.ParseSize(maxSize)
	if err != nil {
		return nil, err
	}

	in, err := input.Read(arg, a.stdin, limit)
	if err != nil {
		var sizeErr *input.SizeExceededError
		if errors.Is(err, input.ErrNoInput) || errors.As(err, &sizeErr) {
			return nil, err
		}
		return nil, cli.NewSystemError(err)
	}
	slog.Debug("Input acquired", "source", in.Source.String(), "size", len(in.Data))
	return in, nil
}

// readText is readInput for commands that operate on encoded text.
func (a *app) readText(arg, maxSizeFlag string) (string, error) {
	in, err := a.readInput(arg, maxSizeFlag)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(in.Data) {
		return "", errInputNotUTF8
	}
	return string(in.Data), nil
}

// outputFormat resolves the report format from the flag or configuration.
func (a *app) outputFormat(flagValue string) (output.Format, error) {
	name := a.cfg.Output.Format
	if flagValue != "" {
		name = flagValue
	}
	return cli.ParseOutputFormat(name)
}

// report writes r in format. Quiet mode drops text reports; machine
// readable formats are always written.
func (a *app) report(format output.Format, r output.Report) error {
	if a.global.quiet && format == output.FormatText {
		return nil
	}
	return a.write(format, r)
}

// write renders r to stdout.
func (a *app) write(format output.Format, r output.Report) error {
	if err := output.Write(a.stdout, output.NewFormatter(format, a.palette), r); err != nil {
		return cli.NewSystemError(err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f)
}

func colorEnabled(mode terminal.ColorMode, w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return terminal.StreamColorEnabled(mode, f)
	}
	return terminal.ColorEnabled(mode, false)
}
