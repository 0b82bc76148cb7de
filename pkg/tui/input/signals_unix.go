// ABOUTME: OS signal subscription and self-signalling for the input pipeline.
// ABOUTME: SIGWINCH reloads; HUP, INT, QUIT and TERM shut the program down.

//go:build unix

package input

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

var watchedSignals = []os.Signal{
	unix.SIGWINCH,
	unix.SIGHUP,
	unix.SIGINT,
	unix.SIGQUIT,
	unix.SIGTERM,
}

// signalSource abstracts where signals come from so tests can drive the
// pipeline without touching the process.
type signalSource struct {
	ch    chan os.Signal
	raise func(os.Signal) error
	stop  func()
}

func processSignals() signalSource {
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, watchedSignals...)
	return signalSource{
		ch: ch,
		raise: func(s os.Signal) error {
			return unix.Kill(os.Getpid(), s.(syscall.Signal))
		},
		stop: func() { signal.Stop(ch) },
	}
}

func isResize(s os.Signal) bool {
	return s == unix.SIGWINCH
}

var (
	reloadSignal os.Signal = unix.SIGWINCH
	exitSignal   os.Signal = unix.SIGINT
)
