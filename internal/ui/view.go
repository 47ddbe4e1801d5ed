package ui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.paneHeight() > 0 {
		b.WriteString(m.pane)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	s := m.styles
	parts := []string{
		s.Title.Render(" msgcue "),
		s.Header.Render(fmt.Sprintf("%d/%d", m.queue.Len(), m.queue.Cap())),
	}
	// Errors go first so a narrow header cuts the toggles, not the error.
	if m.lastErr != nil {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%v (retry in %s)", m.lastErr, humanizeRetry(m.failures, m.pollEvery))))
	}
	parts = append(parts,
		s.MutedText.Render(fmt.Sprintf("level ≤ %s", m.window.MinLevel)),
		s.MutedText.Render(fmt.Sprintf("tags %s", m.window.LevelFormat)),
	)
	if m.window.ShowTime {
		parts = append(parts, s.MutedText.Render("time"))
	}
	line := strings.Join(parts, s.MutedText.Render(" · "))
	return s.Header.Width(m.width).MaxHeight(1).Render(line)
}

func (m Model) renderStatus() string {
	s := m.styles
	switch {
	case m.acks > 0:
		prompt := "Paused: press enter to continue"
		if m.acks > 1 {
			prompt = fmt.Sprintf("%s (%d pauses)", prompt, m.acks)
		}
		if n := len(m.heldLines); n > 0 {
			prompt = fmt.Sprintf("%s, %d lines waiting", prompt, n)
		}
		return s.Prompt.Render(prompt)
	case m.source == nil:
		return s.MutedText.Render("no input source")
	case m.sourceDone:
		return s.MutedText.Render(fmt.Sprintf("%s finished", m.sourceName))
	default:
		return s.MutedText.Render(fmt.Sprintf("following %s", m.sourceName))
	}
}
