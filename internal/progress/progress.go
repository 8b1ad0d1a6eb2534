// Package progress shows how many documents have been parsed. Output goes
// to stderr to keep stdout clean for piping, and only on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
const minItems = 5

// Progress tracks and displays operation progress. It is safe for
// concurrent use by the parser workers.
type Progress struct {
	w     io.Writer
	label string
	total int
	isTTY bool

	mu      sync.Mutex
	current int
	width   int // length of the last line written
}

// New creates a progress reporter that writes to stderr.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), label, total)
}

// NewWriter creates a progress reporter on w. Nothing is written unless
// tty is true and total reaches minItems.
func NewWriter(w io.Writer, tty bool, label string, total int) *Progress {
	return &Progress{w: w, isTTY: tty, label: label, total: total}
}

func (p *Progress) active() bool {
	return p.isTTY && p.total >= minItems
}

// Tick advances the counter by one and redraws the line in place.
func (p *Progress) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	if !p.active() {
		return
	}
	pct := (p.current * 100) / p.total
	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
	p.width = len(line)
	fmt.Fprintf(p.w, "\r%s", line)
}

// Current returns how many ticks have been recorded.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active() || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}
