// Package app is the composition root for msgcue.
//
// # Overview
//
// Run loads the config file, layers command-line overrides and saved
// preferences on top, builds the message queue and picks a source. It then
// hands off to one of two front ends:
//
//   - the Bubble Tea interface in package ui (default)
//   - RunPlain, which redraws the window with escape sequences and blocks
//     on a console prompt for paused messages
//
// # Sources
//
//   - follow file set: the last Backlog lines are loaded without pausing,
//     then the file is tailed from the offset where that read ended
//   - stdin piped: lines are read as they arrive and keys come from the
//     controlling terminal
//   - neither: the pane starts empty and stays idle
//
// # Polling
//
// Both front ends poll at the configured interval. A followed file is also
// watched with fsnotify, and a change triggers the next poll early.
// Consecutive poll errors back off exponentially up to logtail.MaxBackoff
// and are logged; the loop keeps going. RunPlain returns once a finite source
// (piped stdin) is exhausted.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - config file unreadable or holding an unknown level name
//   - follow file unreadable when loading the backlog
//   - log file cannot be opened
//
// Recoverable errors are logged with the standard logger. In TUI mode the
// logger writes to -log, or nowhere, so it never draws over the interface.
package app
