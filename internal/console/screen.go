package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Clear erases the screen and homes the cursor.
func Clear(w io.Writer) error {
	if _, err := io.WriteString(w, ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// Size reports the terminal dimensions for fd, or the fallbacks when fd is
// not a terminal.
func Size(fd int, fallbackWidth, fallbackHeight int) (int, int) {
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}
