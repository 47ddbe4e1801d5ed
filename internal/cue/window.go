package cue

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/msgcue/internal/message"
)

// Window describes the rectangle a queue is rendered into.
type Window struct {
	Width       int
	Height      int
	Border      string // repeated Width times above and below; empty disables borders
	LevelFormat message.LevelFormat
	ShowTime    bool
	MinLevel    message.Level // most verbose level still shown
}

// DefaultWindow returns a borderless window with long level tags,
// timestamps, and every level visible.
func DefaultWindow(width, height int) Window {
	return Window{
		Width:       width,
		Height:      height,
		LevelFormat: message.FormatLong,
		ShowTime:    true,
		MinLevel:    message.Debug,
	}
}

// InnerHeight is the number of message rows left after borders.
func (w Window) InnerHeight() int {
	if w.Border != "" {
		return w.Height - 2
	}
	return w.Height
}

func (w Window) borderLine() string {
	return strings.Repeat(w.Border, max(w.Width, 0))
}

// Select returns up to limit of the newest messages passing minLevel, oldest first.
func (q *Queue) Select(limit int, minLevel message.Level) []*message.Message {
	if limit <= 0 || q.count == 0 {
		return nil
	}
	picked := make([]*message.Message, 0, min(limit, q.count))
	for i := q.count - 1; i >= 0 && len(picked) < limit; i-- {
		if msg := q.at(i); minLevel.Includes(msg.Level()) {
			picked = append(picked, msg)
		}
	}
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked
}

// RenderWindow writes the newest qualifying messages bottom-aligned into win.
// Rendering consumes pending pauses, handing each one to ack.
func (q *Queue) RenderWindow(w io.Writer, win Window, ack message.Acknowledger) error {
	if win.Border != "" {
		if _, err := io.WriteString(w, win.borderLine()+"\n"); err != nil {
			return fmt.Errorf("write border: %w", err)
		}
	}

	inner := win.InnerHeight()
	picked := q.Select(inner, win.MinLevel)
	if pad := inner - len(picked); pad > 0 {
		if _, err := io.WriteString(w, strings.Repeat("\n", pad)); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}

	for _, msg := range picked {
		if err := msg.Render(w, win.Width, win.LevelFormat, win.ShowTime, ack); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
	}

	if win.Border != "" {
		if _, err := io.WriteString(w, win.borderLine()+"\n"); err != nil {
			return fmt.Errorf("write border: %w", err)
		}
	}
	return nil
}

// Render returns the window as a string, for callers that compose their own frame.
func (q *Queue) Render(win Window, ack message.Acknowledger) (string, error) {
	var b strings.Builder
	err := q.RenderWindow(&b, win, ack)
	return b.String(), err
}
