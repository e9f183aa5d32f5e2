package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTick = 80 * time.Millisecond

// Spinner animates a one-line status on stderr while a layout runs. It
// stops on Stop or when its parent context ends.
type Spinner struct {
	w       io.Writer
	label   string
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex // guards writes to w and started
	started bool
	exited  chan struct{}
	once    sync.Once
}

func newSpinner(label string) *Spinner {
	return newSpinnerWithContext(context.Background(), label)
}

func newSpinnerWithContext(ctx context.Context, label string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:      os.Stderr,
		label:  label,
		ctx:    ctx,
		cancel: cancel,
		exited: make(chan struct{}),
	}
}

// Start launches the animation goroutine. Calling it twice has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	go func() {
		defer close(s.exited)
		t := time.NewTicker(spinnerTick)
		defer t.Stop()
		for n := 0; ; n++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-t.C:
				s.draw(spinnerFrames[n%len(spinnerFrames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	width := lipgloss.Width(s.label) + 2
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
}

// Stop halts the animation and erases the status line. It waits for the
// animation goroutine and is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.exited
		}
	})
}

// StopWithSuccess stops the spinner and prints msg as a success line.
func (s *Spinner) StopWithSuccess(msg string) {
	s.Stop()
	printSuccess("%s", msg)
}

// StopWithError stops the spinner and prints msg as a failure line.
func (s *Spinner) StopWithError(msg string) {
	s.Stop()
	printError("%s", msg)
}

// Cancelled reports whether the spinner's context has ended, either by
// Stop or by its parent.
func (s *Spinner) Cancelled() bool { return s.ctx.Err() != nil }
