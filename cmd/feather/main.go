// Package main is the entry point for the feather editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/feather/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feather: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "feather: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "path to the configuration file")
	flag.StringVar(&opts.LogFile, "log-file", "", "write a log to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.BoolVar(&opts.ANSI, "ansi", false, "use raw VT100 escape sequences instead of terminfo")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "feather - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: feather [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("feather %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "feather: invalid log level %q\n", opts.LogLevel)
		return opts, false
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return opts, false
	}
	opts.Path = flag.Arg(0)
	return opts, true
}
