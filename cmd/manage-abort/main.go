// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	terminal "golang.org/x/term"

	"github.com/bureau-foundation/manage/lib/config"
	"github.com/bureau-foundation/manage/lib/process"
	"github.com/bureau-foundation/manage/lib/term"
	"github.com/bureau-foundation/manage/lib/version"
)

// usageExitCode is returned for argument and configuration errors.
const usageExitCode = 2

func main() {
	run(os.Args[1:])
}

// run never returns: every path ends in an exit.
func run(args []string) {
	resolved, err := parseArguments(args)
	if errors.Is(err, pflag.ErrHelp) {
		printUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(os.Stderr)
		os.Exit(usageExitCode)
	}

	if resolved.showVersion {
		fmt.Printf("manage-abort %s\n", version.Info())
		os.Exit(0)
	}

	logger := newLogger(resolved.verbose)
	logger.Debug("reporting fatal error",
		"color", resolved.color,
		"config", resolved.configPath,
	)

	process.NewAborter(resolved.color).Abort(resolved.message)
}

// invocation is the resolved command line. When showVersion is set
// the other fields are zero.
type invocation struct {
	message     string
	color       term.ColorMode
	configPath  string
	verbose     bool
	showVersion bool
}

// flagValues receives parsed flag values.
type flagValues struct {
	color      term.ColorMode
	configPath string
	verbose    bool
	version    bool
}

func newFlagSet(values *flagValues) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("manage-abort", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(false)
	flagSet.Var(&values.color, "color", "color mode: auto, always, or never")
	flagSet.StringVar(&values.configPath, "config", "", "config file (default $"+config.EnvironmentVariable+")")
	flagSet.BoolVarP(&values.verbose, "verbose", "v", false, "log the resolved settings before reporting")
	flagSet.BoolVar(&values.version, "version", false, "print version information and exit")
	return flagSet
}

// parseArguments resolves flags, config, and message. Precedence for
// the color mode is --color, then the config file, then auto.
func parseArguments(args []string) (*invocation, error) {
	values := flagValues{color: term.ColorAuto}
	flagSet := newFlagSet(&values)
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if values.version {
		return &invocation{showVersion: true}, nil
	}
	if flagSet.NArg() == 0 {
		return nil, errors.New("no error message given")
	}

	cfg, err := loadConfig(values.configPath)
	if err != nil {
		return nil, err
	}
	configPath := values.configPath
	if configPath == "" {
		configPath = os.Getenv(config.EnvironmentVariable)
	}
	color := values.color
	if !flagSet.Changed("color") {
		color = cfg.Color
	}

	return &invocation{
		message:    strings.Join(flagSet.Args(), " "),
		color:      color,
		configPath: configPath,
		verbose:    values.verbose,
	}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnvironment()
}

// newLogger writes to stderr: text on a terminal, JSON otherwise.
// Records below warn are dropped unless verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if terminal.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: manage-abort [flags] message...\n\n")
	fmt.Fprintf(w, "Prints \"Error: message\" to stderr and exits with status 1.\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fmt.Fprint(w, newFlagSet(&flagValues{color: term.ColorAuto}).FlagUsages())
}
