package message

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Marker replaces the middle of content that does not fit its budget.
const Marker = "[...]"

const timestampLayout = "15:04:05"

// Acknowledger blocks until the user has seen a paused message and then
// retracts whatever prompt it printed.
type Acknowledger interface {
	Acknowledge() error
}

// AcknowledgerFunc adapts a plain function to Acknowledger.
type AcknowledgerFunc func() error

// Acknowledge calls f.
func (f AcknowledgerFunc) Acknowledge() error { return f() }

// Message is one logged event. Only the pending pause changes after construction.
type Message struct {
	content      string
	level        Level
	pendingPause bool
	timestamp    string
}

var levelStyles = map[Level]lipgloss.Style{
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Underline(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// New creates a message stamped with the current wall-clock time.
func New(content, levelName string, pause bool) (*Message, error) {
	return NewAt(content, levelName, pause, time.Now())
}

// NewAt creates a message stamped with at.
func NewAt(content, levelName string, pause bool, at time.Time) (*Message, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return &Message{
		content:      content,
		level:        level,
		pendingPause: pause,
		timestamp:    at.Format(timestampLayout),
	}, nil
}

// Content returns the text as appended. Line breaks are only flattened when
// rendering.
func (m *Message) Content() string { return m.content }

// Level returns the message severity.
func (m *Message) Level() Level { return m.level }

// Timestamp returns the creation time formatted as HH:MM:SS.
func (m *Message) Timestamp() string { return m.timestamp }

// PendingPause reports whether the next render still waits for an
// acknowledgement.
func (m *Message) PendingPause() bool { return m.pendingPause }

// Render writes the message as a single line of at most budget visible
// columns, without a trailing newline. A pending pause is consumed after the
// line is written and ack is asked to wait for the user; a nil ack drops the
// pause without waiting.
func (m *Message) Render(w io.Writer, budget int, format LevelFormat, showTime bool, ack Acknowledger) error {
	levelTag := m.levelTag(format)
	timeTag := ""
	if showTime {
		timeTag = "|" + m.timestamp
	}

	contentBudget := budget - lipgloss.Width(levelTag) - lipgloss.Width(timeTag)
	line := levelTag + fitContent(m.content, contentBudget) + timeTag
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	if !m.pendingPause {
		return nil
	}
	m.pendingPause = false
	if ack == nil {
		return nil
	}
	if err := ack.Acknowledge(); err != nil {
		return fmt.Errorf("acknowledge message: %w", err)
	}
	return nil
}

func (m *Message) levelTag(format LevelFormat) string {
	var text string
	switch format {
	case FormatShort:
		text = strconv.Itoa(m.level.Ordinal())
	case FormatLong:
		text = m.level.String()
	default:
		return ""
	}
	if style, ok := levelStyles[m.level]; ok {
		text = style.Render(text)
	}
	return "[" + text + "]"
}

// singleLine replaces line breaks with spaces so a message renders as one
// row.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}

// fitContent returns content on one line when it fits budget runes, and a
// middle-truncated copy of exactly budget runes otherwise. Budgets too small
// for the marker keep the head of content; non-positive budgets yield "".
func fitContent(content string, budget int) string {
	content = singleLine(content)
	runes := []rune(content)
	if len(runes) <= budget {
		return content
	}
	if budget <= 0 {
		return ""
	}
	marker := []rune(Marker)
	if budget < len(marker) {
		return string(runes[:budget])
	}
	return snip(runes, budget)
}

// snip splits runes in half around the marker and trims one rune at a time,
// right half first, until the result is exactly target runes long.
func snip(runes []rune, target int) string {
	half := len(runes) / 2
	left, right := runes[:half], runes[half:]
	overhang := len(runes) + len([]rune(Marker)) - target
	for i := 0; overhang > 0; i++ {
		if i%2 == 0 && len(right) > 0 {
			right = right[1:]
		} else if len(left) > 0 {
			left = left[:len(left)-1]
		} else {
			right = right[1:]
		}
		overhang--
	}
	return string(left) + Marker + string(right)
}
