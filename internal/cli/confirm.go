package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Confirmer asks the user a yes/no question. An error means the prompt was
// aborted (Ctrl+C, end of input) rather than answered.
type Confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// NewConfirmer uses readline on a terminal and a plain line reader otherwise.
func NewConfirmer() Confirmer {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return readlineConfirmer{}
	}
	return NewLineConfirmer(os.Stdin, os.Stdout)
}

func questionWithDefault(question string, defaultYes bool) string {
	if defaultYes {
		return question + " [Y/n] "
	}
	return question + " [y/N] "
}

// parseAnswer returns the answer and whether input was understood.
func parseAnswer(input string, defaultYes bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return defaultYes, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

type readlineConfirmer struct{}

func (readlineConfirmer) Confirm(question string, defaultYes bool) (bool, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          questionWithDefault(question, defaultYes),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return false, err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return false, err
		}
		if answer, ok := parseAnswer(line, defaultYes); ok {
			return answer, nil
		}
	}
}

// LineConfirmer reads answers line by line, e.g. from a pipe.
type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *LineConfirmer) Confirm(question string, defaultYes bool) (bool, error) {
	for {
		fmt.Fprint(c.out, questionWithDefault(question, defaultYes))
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, err
		}
		if answer, ok := parseAnswer(line, defaultYes); ok {
			return answer, nil
		}
		if err == io.EOF {
			return false, err
		}
	}
}
