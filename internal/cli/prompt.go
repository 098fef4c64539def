package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrQuit is returned when the user leaves an interactive run.
var ErrQuit = errors.New("quit")

// Prompter reads answers line by line. Reads stop when the context is
// cancelled even while the underlying reader blocks.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines chan string
	errs  chan error
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:    in,
		out:   out,
		lines: make(chan string),
		errs:  make(chan error, 1),
	}
	go p.scan()
	return p
}

func (p *Prompter) scan() {
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- sc.Text()
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	p.errs <- err
}

// Ask prints the prompt and returns the trimmed answer.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case line := <-p.lines:
		return strings.TrimSpace(line), nil
	case err := <-p.errs:
		p.errs <- err
		return "", err
	}
}

// AskSecret reads without echo when the input is a terminal, and falls back
// to Ask otherwise.
func (p *Prompter) AskSecret(ctx context.Context, prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Ask(ctx, prompt)
	}
	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of f, or 0 when it is not a terminal.
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Interrupted reports whether err ends a run without being a failure.
func Interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, ErrQuit)
}
