// Package ui provides the msgcue terminal interface built on Bubble Tea.
//
// # Architecture
//
// Model owns the message queue. Sources are polled from a tea.Cmd that only
// reads lines; classification and appending happen in Update, so the queue
// never needs a lock.
//
//   - app.go: Options, Model, Update and Run
//   - pane.go: window sizing, rendering and pause bookkeeping
//   - commands.go: poll messages and commands
//   - view.go: header, pane, status line and help composition
//   - keys.go: key bindings and help text
//   - theme.go: Nightfox palette and lipgloss styles
//
// # Pauses
//
// Rendering the pane consumes pending pauses. Each one increments a counter
// instead of blocking, and the status line asks for enter. While the counter
// is non-zero, newly polled lines are held back so the paused message stays
// on screen. The last acknowledgement flushes them into the queue.
//
// # Key Bindings
//
//   - l: Cycle the minimum level (Error → ... → Debug)
//   - f: Cycle level tags (long → short → none)
//   - t: Toggle timestamps
//   - b: Toggle the border
//   - enter: Acknowledge a pause
//   - c: Clear the queue
//   - ?: Toggle full help
//   - q or Ctrl+C: Quit
//
// Display toggles are saved to the prefs file as they change.
package ui
