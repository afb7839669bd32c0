package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type Spinner struct {
	out         io.Writer
	message     string
	interactive bool
	stop        chan struct{}
	done        chan struct{}
	mu          sync.Mutex
	active      bool
}

// NewSpinner animates message on out. When interactive is false the message
// is printed once instead.
func NewSpinner(out io.Writer, message string, interactive bool) *Spinner {
	return &Spinner{
		out:         out,
		message:     message,
		interactive: interactive,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	if !s.interactive {
		yellow.Fprintln(s.out, s.message)
		return
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(s.out, "\r  %s %s", spinnerFrames[i%len(spinnerFrames)], yellow.Sprint(s.message))
			select {
			case <-s.stop:
				// Clear the spinner line
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}
