// Package main is the entry point for vimotion.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/app"
	"github.com/dshills/vimotion/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errHelp is returned by parseFlags when the program should exit
// successfully without doing anything else.
var errHelp = errors.New("help requested")

type cliOptions struct {
	app.Options

	Keys   string
	Output string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stdout, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.Keys != "" {
		return replay(opts, stdout, stderr)
	}
	return interactive(opts, stderr)
}

// replay runs the key sequence without a terminal and prints the result.
func replay(opts cliOptions, stdout, stderr io.Writer) int {
	opts.LogOutput = stderr

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	step, err := application.Replay(opts.Keys)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Output != "" {
		if err := application.SaveAs(opts.Output); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else if _, err := application.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cur := application.Buffer().Cursor()
	fmt.Fprintf(stderr, "cursor %d:%d", cur.Row+1, cur.Column+1)
	if step.Dispatched {
		fmt.Fprintf(stderr, " (%s)", step.Outcome)
	}
	fmt.Fprintln(stderr)
	return 0
}

// interactive runs the terminal UI until the user quits.
func interactive(opts cliOptions, stderr io.Writer) int {
	// The terminal belongs to the UI; logs go to the configured file only.
	opts.LogOutput = io.Discard

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := application.WatchConfig(); err != nil {
		application.Logger().Warn("config reload disabled: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Quit()
		}
	}()

	if err := application.Run(screen); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stdout, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	fs := flag.NewFlagSet("vimotion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	fs.StringVar(&opts.Keys, "keys", "", "Replay a key sequence and print the buffer")
	fs.StringVar(&opts.Keys, "k", "", "Replay a key sequence (shorthand)")
	fs.BoolVar(&opts.Select, "select", false, "Start in select mode")
	fs.BoolVar(&opts.Select, "s", false, "Start in select mode (shorthand)")
	fs.StringVar(&opts.Output, "o", "", "With -keys, write the buffer to this file instead of stdout")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "vimotion - modal motion engine for Vim-style key chords\n\n")
		fmt.Fprintf(stderr, "Usage: vimotion [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		for _, name := range config.EnvNames() {
			fmt.Fprintf(stderr, "  %s\n", name)
		}
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vimotion file.txt                   Open a file\n")
		fmt.Fprintf(stderr, "  vimotion -keys '3wfa' file.txt      Replay keys, print the buffer\n")
		fmt.Fprintf(stderr, "  vimotion -s -keys '$X' -o out.txt   Delete the last character of line 1\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}

	if showHelp {
		fs.Usage()
		return opts, errHelp
	}

	if showVersion {
		fmt.Fprintf(stdout, "vimotion %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errHelp
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error", "off":
		// Valid
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, error, or off)", opts.LogLevel)
	}

	if fs.NArg() > 1 {
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.File = fs.Arg(0)

	if opts.Output != "" && opts.Keys == "" {
		return opts, errors.New("-o requires -keys")
	}

	if opts.ConfigPath == "" {
		opts.ConfigPath = defaultConfigPath()
	}

	return opts, nil
}

// defaultConfigPath returns the per-user config file if one exists.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, "vimotion", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
