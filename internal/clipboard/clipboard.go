package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard mechanism exists.
var ErrUnavailable = errors.New("no clipboard available on this system")

// Clipboard copies text somewhere the user can paste it from.
type Clipboard interface {
	Name() string
	WriteText(text string) error
}

// New picks the clipboard for this process: the OS clipboard when a helper
// is present, otherwise OSC52 when out is a terminal.
func New(out io.Writer, isTerminal bool) Clipboard {
	if !clipboard.Unsupported {
		return System{}
	}
	if isTerminal {
		return &OSC52{Out: out, Getenv: os.Getenv}
	}
	return Unavailable{}
}

// System uses pbcopy, xclip/xsel/wl-copy or the Windows API.
type System struct{}

func (System) Name() string { return "system" }

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal emulator to set its clipboard. It works over SSH
// but the terminal may silently ignore the request.
type OSC52 struct {
	Out    io.Writer
	Getenv func(string) string
}

func (*OSC52) Name() string { return "osc52" }

func (o *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	switch term := o.getenv("TERM"); {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

func (o *OSC52) getenv(key string) string {
	if o.Getenv == nil {
		return ""
	}
	return o.Getenv(key)
}

// Unavailable always fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Name() string { return "none" }

func (Unavailable) WriteText(string) error { return ErrUnavailable }
