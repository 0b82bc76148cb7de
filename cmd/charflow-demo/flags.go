// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Flags override the merged YAML settings; only flags given on the command line apply

package main

import (
	"flag"
	"time"

	"github.com/mauromedda/charflow-go/internal/config"
)

type cliArgs struct {
	debug    bool
	frame    time.Duration
	next     string
	prev     string
	logFile  string
	logLevel string
	version  bool

	set map[string]bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.debug, "debug", false, "Draw the diagnostic line and mark the mouse cursor")
	flag.DurationVar(&args.frame, "frame", 0, "Input frame timeout (e.g., 10ms)")
	flag.StringVar(&args.next, "next", "", "Key that moves focus forward (e.g., J, tab, ctrl+n)")
	flag.StringVar(&args.prev, "prev", "", "Key that moves focus backward")
	flag.StringVar(&args.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&args.logLevel, "log-level", "", "debug, info, warn or error")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()

	args.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args
}

// apply copies every explicitly given flag onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.set["debug"] {
		s.Debug = a.debug
	}
	if a.set["frame"] {
		s.FrameTimeout = a.frame
	}
	if a.set["next"] {
		s.NextKey = a.next
	}
	if a.set["prev"] {
		s.PreviousKey = a.prev
	}
	if a.set["log-file"] {
		s.LogFile = a.logFile
	}
	if a.set["log-level"] {
		s.LogLevel = a.logLevel
	}
}
