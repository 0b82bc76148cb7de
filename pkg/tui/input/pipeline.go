// ABOUTME: Pipeline owns the terminal session, the reader goroutine and signal handling.
// ABOUTME: Update drains signals, decodes pending input and dispatches it to observers.

package input

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mauromedda/charflow-go/internal/eventbus"
	pilog "github.com/mauromedda/charflow-go/internal/log"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
	"github.com/mauromedda/charflow-go/pkg/tui/terminal"
)

// followUpWait bounds the wait for each byte of a mouse report.
const followUpWait = time.Millisecond

// Options configures a Pipeline.
type Options struct {
	// Debug draws the diagnostic line and marks the mouse cursor.
	Debug bool
	// Terminal defaults to the process's stdin/stdout.
	Terminal terminal.Terminal
	// Exit ends the process after shutdown. Defaults to os.Exit.
	Exit func(code int)
}

// Pipeline reads raw input on a background goroutine and dispatches
// decoded events on the goroutine that calls Update.
type Pipeline struct {
	session *terminal.Session
	term    terminal.Terminal
	debug   bool
	exit    func(int)

	bytes   <-chan byte
	signals signalSource
	dec     decoder

	keys *eventbus.Bus[key.Event]
	mice *eventbus.Bus[key.MouseEvent]

	shutdownOnce sync.Once
	closeOnce    sync.Once
	done         bool

	mu            sync.RWMutex
	width, height int

	lastKey   key.Event
	lastMouse key.MouseEvent
	readout   []byte
}

// New acquires the terminal, starts the reader and subscribes to signals.
// The Ctrl+C and Ctrl+L observers are registered first; with Debug set the
// cursor marker follows them.
func New(opts Options) (*Pipeline, error) {
	return start(opts, processSignals())
}

func start(opts Options, signals signalSource) (*Pipeline, error) {
	t := opts.Terminal
	if t == nil {
		t = terminal.NewProcessTerminal()
	}
	session, err := terminal.Acquire(t)
	if err != nil {
		signals.stop()
		return nil, fmt.Errorf("input: %w", err)
	}

	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}

	ch := make(chan byte, byteQueueSize)
	p := &Pipeline{
		session: session,
		term:    t,
		debug:   opts.Debug,
		exit:    exit,
		bytes:   ch,
		signals: signals,
		keys:    eventbus.New[key.Event](),
		mice:    eventbus.New[key.MouseEvent](),
	}
	p.dec = decoder{
		next:    p.nextFollowUp,
		onKey:   p.dispatchKey,
		onMouse: p.dispatchMouse,
	}
	p.refreshSize()

	go readLoop(t, ch, session)

	p.AddKeyObserver(ExitObserver(p))
	p.AddKeyObserver(ReloadObserver(p))
	if p.debug {
		p.AddMouseObserver(CursorMarker(t))
	}
	return p, nil
}

// AddKeyObserver registers o after every existing key observer and
// returns a function that removes it.
func (p *Pipeline) AddKeyObserver(o KeyObserver) func() {
	return p.keys.Subscribe(o.HandleKey)
}

// AddMouseObserver registers o after every existing mouse observer and
// returns a function that removes it.
func (p *Pipeline) AddMouseObserver(o MouseObserver) func() {
	return p.mice.Subscribe(o.HandleMouse)
}

// Terminal returns the terminal the pipeline controls.
func (p *Pipeline) Terminal() terminal.Terminal {
	return p.term
}

// Session returns the guarded terminal session, for deferring
// terminal.RestoreOnPanic.
func (p *Pipeline) Session() *terminal.Session {
	return p.session
}

// Size returns the terminal dimensions cached at startup or the last resize.
func (p *Pipeline) Size() (width, height int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.width, p.height
}

// Reload raises SIGWINCH on the process; the next Update clears the screen
// and re-reads the size.
func (p *Pipeline) Reload() {
	if err := p.signals.raise(reloadSignal); err != nil {
		pilog.Warn("input: reload: %v", err)
	}
}

// Exit raises SIGINT on the process; the next Update shuts down.
func (p *Pipeline) Exit() {
	if err := p.signals.raise(exitSignal); err != nil {
		pilog.Warn("input: exit: %v", err)
	}
}

// Close stops signal delivery and releases the terminal. Safe to call more
// than once and after a signal-driven shutdown.
func (p *Pipeline) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.signals.stop()
		err = p.session.Release()
	})
	return err
}

// Update runs one input frame: react to pending signals, then decode bytes
// until none arrives within timeout, then draw the debug line.
func (p *Pipeline) Update(timeout time.Duration) {
	if p.done {
		return
	}
	p.drainSignals()
	if p.done {
		return
	}

	p.readout = p.readout[:0]
	p.drainInput(timeout)

	if p.debug {
		p.drawOverlay()
	}
}

func (p *Pipeline) drainSignals() {
	for {
		select {
		case s := <-p.signals.ch:
			if isResize(s) {
				p.resize()
				continue
			}
			p.shutdown(s)
			return
		default:
			return
		}
	}
}

func (p *Pipeline) drainInput(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case b, ok := <-p.bytes:
			if !ok {
				// Reader is gone; a nil channel never becomes ready.
				p.bytes = nil
				continue
			}
			p.readout = append(p.readout, b)
			p.dec.feed(b)
			timer.Reset(timeout)
		case <-timer.C:
			p.dec.flush()
			return
		}
	}
}

// nextFollowUp waits briefly for one byte of a mouse report.
func (p *Pipeline) nextFollowUp() (byte, bool) {
	timer := time.NewTimer(followUpWait)
	defer timer.Stop()
	select {
	case b, ok := <-p.bytes:
		if !ok {
			p.bytes = nil
			return 0, false
		}
		p.readout = append(p.readout, b)
		return b, true
	case <-timer.C:
		return 0, false
	}
}

func (p *Pipeline) dispatchKey(e key.Event) {
	p.lastKey = e
	p.keys.Publish(e)
}

func (p *Pipeline) dispatchMouse(e key.MouseEvent) {
	p.lastMouse = e
	p.mice.Publish(e)
}

func (p *Pipeline) refreshSize() {
	w, h, err := p.term.Size()
	if err != nil {
		pilog.Warn("input: %v", err)
		return
	}
	p.mu.Lock()
	p.width, p.height = w, h
	p.mu.Unlock()
}

func (p *Pipeline) resize() {
	p.refreshSize()
	w, h := p.Size()
	pilog.Debug("input: resize to %dx%d", w, h)
	_, _ = io.WriteString(p.term, terminal.ClearAll)
	_ = p.term.Flush()
}

// shutdown releases the terminal and exits. Only the first terminating
// signal has any effect.
func (p *Pipeline) shutdown(s os.Signal) {
	p.shutdownOnce.Do(func() {
		pilog.Debug("input: terminating on %v", s)
		p.done = true
		if err := p.Close(); err != nil {
			pilog.Error("input: restoring terminal: %v", err)
		}
		p.exit(0)
	})
}
