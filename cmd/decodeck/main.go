// Package main provides the decodeck command. It detects and decodes
// Base64, hex, Base32, URL and Ascii85 data, peels layered encodings and
// scans structured documents for encoded values.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decodeck/decodeck/internal/cli"
	"github.com/decodeck/decodeck/internal/color"
	"github.com/decodeck/decodeck/internal/terminal"
	"github.com/spf13/pflag"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(a *app, args []string) error
}

var commands = []command{
	{name: "decode", usage: "decode [flags] [DATA]", summary: "Decode data, auto-detecting the encoding unless -e is given", run: runDecode},
	{name: "encode", usage: "encode -e ENCODING [flags] [DATA]", summary: "Encode data with the given encoding", run: runEncode},
	{name: "detect", usage: "detect [flags] [DATA]", summary: "Report which encoding DATA most likely uses", run: runDetect},
	{name: "chain", usage: "chain [flags] [DATA]", summary: "Peel nested encodings until plain data remains", run: runChain},
	{name: "scan", usage: "scan [flags] [DOCUMENT]", summary: "Find encoded values inside a JSON, XML or YAML document", run: runScan},
}

func main() {
	var stdin io.Reader
	if terminal.StdinHasData() {
		stdin = os.Stdin
	}
	os.Exit(run(os.Args[1:], stdin, os.Stdout, os.Stderr))
}

// run executes one decodeck invocation. stdin is nil when no data is
// piped in.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return cli.ExitUserError
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(stdout)
		return cli.ExitSuccess
	case "--version", "version":
		_, _ = fmt.Fprintf(stdout, "decodeck %s\n", version)
		return cli.ExitSuccess
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		_, _ = fmt.Fprintf(stderr, "Error: %v: %q\n\n", cli.ErrUnknownCommand, args[0])
		printUsage(stderr)
		return cli.ExitUserError
	}

	a := newApp(cmd, stdin, stdout, stderr)
	defer a.close()

	err := cmd.run(a, args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return cli.ExitSuccess
	}
	if err != nil {
		errPalette := color.NewPalette(colorEnabled(terminal.ColorAuto, stderr))
		_, _ = fmt.Fprintf(stderr, "%s %v\n", errPalette.Error("Error:"), err)
	}
	return cli.ExitCode(err)
}

func findCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: decodeck <command> [flags] [DATA]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.summary)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "DATA is read from standard input when omitted or \"-\".")
	_, _ = fmt.Fprintln(w, "Run 'decodeck <command> --help' for the flags of a command.")
}
