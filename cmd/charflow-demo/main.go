// ABOUTME: Demo entry point with terminal crash recovery
// ABOUTME: Loads config, takes over the terminal and runs the render/input loop until Ctrl+C

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/mauromedda/charflow-go/internal/config"
	pilog "github.com/mauromedda/charflow-go/internal/log"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/input"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("charflow-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	code, err := run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run sets everything up, loops until the pipeline shuts down, and returns
// the exit code it asked for.
func run(args cliArgs) (int, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return 1, fmt.Errorf("loading config: %w", err)
	}
	args.apply(cfg)

	next, prev, err := cfg.CycleKeys()
	if err != nil {
		return 1, fmt.Errorf("config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return 1, fmt.Errorf("config: %w", err)
	}
	pilog.SetLevel(level)

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return 1, err
	}
	defer closeLog()
	defer pilog.SetOutput(pilog.SetOutput(logOut))

	palette, err := cfg.Colors()
	if err != nil {
		pilog.Warn("config: %v", err)
	}
	color.SetPalette(palette)

	exitCode, quit := 0, false
	pipe, err := input.New(input.Options{
		Debug: cfg.Debug,
		Exit: func(code int) {
			exitCode, quit = code, true
		},
	})
	if err != nil {
		return 1, err
	}
	defer terminal.RestoreOnPanic(pipe.Session())
	defer pipe.Close()

	d := newDemo(pipe.Terminal(), next, prev, color.Current())
	pipe.AddKeyObserver(d.scene)
	pipe.AddMouseObserver(d.scene)
	pipe.AddKeyObserver(d)

	var stale atomic.Bool
	watcher := config.NewWatcher(config.ConfigFiles(cwd), func() { stale.Store(true) })
	watcher.Start()
	defer watcher.Stop()

	pilog.Info("demo: started, focus keys %q/%q", next, prev)
	for !quit {
		if stale.Swap(false) {
			reloadPalette(cwd, d)
			pipe.Reload()
		}
		if err := d.scene.Update(); err != nil {
			pilog.Warn("render: %v", err)
		}
		pipe.Update(cfg.FrameTimeout)
	}
	pilog.Info("demo: exiting with %d", exitCode)
	return exitCode, nil
}

// openLog picks where logs go while the terminal is raw: the configured
// file, the default file when debugging, or nowhere.
func openLog(cfg *config.Settings) (io.Writer, func(), error) {
	path := cfg.LogFile
	if path == "" && cfg.Debug {
		path = config.DefaultLogFile()
	}
	if path == "" {
		return io.Discard, func() {}, nil
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// reloadPalette re-reads the config files and restyles the scene. Bad
// palette entries are logged and skipped.
func reloadPalette(cwd string, d *demo) {
	cfg, err := config.Load(cwd)
	if err != nil {
		pilog.Warn("config reload: %v", err)
		return
	}
	p, err := cfg.Colors()
	if err != nil {
		pilog.Warn("config reload: %v", err)
	}
	color.SetPalette(p)
	d.apply(p)
	pilog.Debug("config reload: palette applied")
}
