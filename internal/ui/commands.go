package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/msgcue/internal/logtail"
)

// Messages

// pollMsg asks the model to poll its source again.
type pollMsg time.Time

// linesMsg carries the result of one poll.
type linesMsg struct {
	lines []string
	err   error
	done  bool // source is exhausted; stop polling
}

// Commands

// pollCmd reads the source off the update loop. Only the lines travel back;
// the queue is touched in Update alone.
func pollCmd(src logtail.Source) tea.Cmd {
	return func() tea.Msg {
		lines, err := src.Poll()
		msg := linesMsg{lines: lines, err: err}
		if s, ok := src.(interface{ Done() bool }); ok {
			msg.done = s.Done()
		}
		return msg
	}
}

// pollAfter schedules the next poll after d, or sooner when wake fires.
// A nil wake channel never fires.
func pollAfter(d time.Duration, wake <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case t := <-timer.C:
			return pollMsg(t)
		case <-wake:
			return pollMsg(time.Now())
		}
	}
}
