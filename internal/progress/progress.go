// Package progress prints run telemetry, keeping it apart from the result
// stream.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"
)

// updateInterval throttles transient status updates so tight benchmark
// loops do not spend their time repainting the terminal.
const updateInterval = 250 * time.Millisecond

type Progress struct {
	output io.Writer
	quiet  bool
	tty    bool
	every  rate.Sometimes
	mu     sync.Mutex
	dirty  bool
}

// New returns a Progress writing to w, usually os.Stderr. Transient
// updates are shown only when w is a terminal.
func New(w io.Writer, quiet bool) *Progress {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	return &Progress{
		output: w,
		quiet:  quiet,
		tty:    tty,
		every:  rate.Sometimes{First: 1, Interval: updateInterval},
	}
}

// Printf writes one telemetry line, replacing any transient status line.
func (p *Progress) Printf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	p.eraseLocked()
	fmt.Fprintf(p.output, format+"\n", args...)
	p.mu.Unlock()
}

// Update repaints the transient status line. Updates are throttled and
// appear only on a terminal, so redirected runs stay clean.
func (p *Progress) Update(format string, args ...interface{}) {
	if p.quiet || !p.tty {
		return
	}
	p.every.Do(func() {
		p.mu.Lock()
		fmt.Fprintf(p.output, "\r\033[K"+format, args...)
		p.dirty = true
		p.mu.Unlock()
	})
}

// Clear erases the transient status line, if one is showing.
func (p *Progress) Clear() {
	if p.quiet {
		return
	}
	p.mu.Lock()
	p.eraseLocked()
	p.mu.Unlock()
}

func (p *Progress) eraseLocked() {
	if p.dirty {
		fmt.Fprint(p.output, "\r\033[K")
		p.dirty = false
	}
}
