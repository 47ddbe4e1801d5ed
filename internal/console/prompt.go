package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// PromptText is printed after a paused message while waiting for enter.
const PromptText = "..."

// Prompt waits for one line of input after a paused message, then moves the
// cursor back up so the paused message stays the last visible line.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt reads acknowledgements from in and writes the prompt to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Acknowledge blocks until a line (or EOF) arrives on the input.
func (p *Prompt) Acknowledge() error {
	if _, err := io.WriteString(p.out, PromptText); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if _, err := p.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read acknowledgement: %w", err)
	}
	if _, err := io.WriteString(p.out, ansi.CursorUp(1)); err != nil {
		return fmt.Errorf("retract prompt: %w", err)
	}
	return nil
}

// OpenPrompt returns a prompt bound to the controlling terminal: stdin when it
// is a terminal, otherwise /dev/tty. The returned close function releases any
// file opened here. Without a terminal, pauses are acknowledged immediately.
func OpenPrompt(out io.Writer) (*Prompt, func() error, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return NewPrompt(os.Stdin, out), func() error { return nil }, nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return NewPrompt(eofReader{}, out), func() error { return nil }, nil
		}
		return nil, nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewPrompt(tty, out), tty.Close, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
