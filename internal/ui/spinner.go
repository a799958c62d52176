package ui

import (
	"fmt"
	"io"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is a minimal progress indicator for blocking calls. It only
// writes to the terminal and never touches loop state.
type spinner struct {
	out  io.Writer
	done chan struct{}
	quit chan struct{}
}

func newSpinner(out io.Writer) *spinner {
	return &spinner{
		out:  out,
		done: make(chan struct{}),
		quit: make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-s.quit:
				fmt.Fprint(s.out, "\r \r")
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s", faintStyle.Render(spinnerFrames[i%len(spinnerFrames)]))
				i++
			}
		}
	}()
}

func (s *spinner) stop() {
	close(s.quit)
	<-s.done
}
