package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/msgcue/internal/logtail"
	"github.com/five82/msgcue/internal/message"
)

// defaultBorder is used when borders are toggled on without a configured one.
const defaultBorder = "─"

// headerRows and statusRows surround the pane; the help view adds its own height.
const (
	headerRows = 1
	statusRows = 1
)

// paneHeight is the number of rows left for the message window.
func (m Model) paneHeight() int {
	helpRows := lipgloss.Height(m.help.View(m.keys))
	return max(m.height-headerRows-statusRows-helpRows, 0)
}

// refreshPane re-renders the window. Rendering consumes pending pauses;
// each one must be acknowledged before held lines are appended.
func (m *Model) refreshPane() {
	if !m.ready {
		return
	}
	win := m.window.Resolve(m.width, m.paneHeight())
	paused := 0
	pane, err := m.queue.Render(win, message.AcknowledgerFunc(func() error {
		paused++
		return nil
	}))
	if err != nil {
		log.Printf("render pane: %v", err)
	}
	m.acks += paused
	m.pane = strings.TrimSuffix(pane, "\n")
}

// ingest appends lines and re-renders. A batch is cut after each pausing
// line and rendered; when that pause is shown, the rest of the batch is held
// so the paused message stays the newest row until it is acknowledged. A
// paused line the level filter hides does not hold anything back.
func (m *Model) ingest(lines []string) {
	for len(lines) > 0 {
		n, err := logtail.FeedUntilPause(m.queue, lines, m.config.ShouldPause)
		if err != nil {
			log.Printf("append message: %v", err)
		}
		lines = lines[n:]
		m.refreshPane()
		if m.acks > 0 {
			m.heldLines = append(m.heldLines, lines...)
			return
		}
	}
	m.refreshPane()
}

// acknowledge releases one pause. The last release flushes held lines.
func (m *Model) acknowledge() {
	if m.acks == 0 {
		return
	}
	m.acks--
	if m.acks > 0 {
		return
	}
	held := m.heldLines
	m.heldLines = nil
	m.ingest(held)
}
