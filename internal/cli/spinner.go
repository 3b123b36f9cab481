package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// spinner is a terminal progress indicator for the network fetch. It stops
// on Stop or when its context is cancelled, whichever comes first.
type spinner struct {
	message string
	out     io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	frames  []string
}

// newSpinner creates a spinner bound to ctx with the given message.
func newSpinner(ctx context.Context, message string) *spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		out:     os.Stderr,
		ctx:     spinCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation on stderr.
func (s *spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), styleDim.Render(s.message))
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the line. It waits for the render
// goroutine to finish so later output never interleaves with a frame.
func (s *spinner) Stop() {
	s.cancel()
	<-s.stopped
}

// clearLine blanks the frame and message. Width is counted in runes so
// non-ASCII messages clear exactly; +2 covers the frame cell and the space.
func (s *spinner) clearLine() {
	width := utf8.RuneCountInString(s.message) + 2
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", width))
}
