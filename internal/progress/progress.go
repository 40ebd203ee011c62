// Package progress renders stage announcements and a spinner on
// stderr during long-running operations. Output is suppressed when
// stderr is not a terminal, so piped JSON is never polluted.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const frameInterval = 100 * time.Millisecond

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Reporter writes progress to stderr. All methods are no-ops when the
// reporter is disabled, and safe on a nil Reporter.
type Reporter struct {
	out     io.Writer
	enabled bool

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New returns a Reporter enabled only when stderr is a terminal.
func New() *Reporter {
	return &Reporter{
		out:     os.Stderr,
		enabled: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// NewWriter returns an always-enabled Reporter over w. Used by tests.
func NewWriter(w io.Writer) *Reporter {
	return &Reporter{out: w, enabled: true}
}

// Step stops any spinner and announces a pipeline stage.
func (r *Reporter) Step(message string) {
	if r == nil || !r.enabled {
		return
	}
	r.StopSpinner()
	fmt.Fprintf(r.out, "\r\033[K  %s\n", message)
}

// StartSpinner starts an animated spinner with message. Call
// StopSpinner before writing anything else to the terminal.
func (r *Reporter) StartSpinner(message string) {
	if r == nil || !r.enabled {
		return
	}
	r.StopSpinner()

	r.mu.Lock()
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	stop, done := r.stop, r.done
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(r.out, "\r\033[K  %s %s", frames[i%len(frames)], message)
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

// StopSpinner stops the active spinner and clears its line.
func (r *Reporter) StopSpinner() {
	if r == nil || !r.enabled {
		return
	}

	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	fmt.Fprint(r.out, "\r\033[K")
}

// Done stops any spinner and prints a final message.
func (r *Reporter) Done(message string) {
	if r == nil || !r.enabled {
		return
	}
	r.StopSpinner()
	fmt.Fprintf(r.out, "\r\033[K  %s\n", message)
}
