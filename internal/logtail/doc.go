// Package logtail reads log lines that feed the message pane.
//
// # Overview
//
// Three sources are provided:
//
//  1. Read and Backlog: the last N lines of a file, used to seed the pane on
//     startup
//  2. Follower: incremental tailing of a file from a byte offset
//  3. Stream: a non-blocking view of a reader such as piped stdin
//
// Follower and Stream both implement Source, whose Poll method returns the
// lines that arrived since the previous call. Poll never blocks, so callers
// can drive it from a ticker or a Bubble Tea command.
//
// # Reading Log Files
//
// Read scans the file once and keeps a ring of the most recent maxLines
// lines, so memory is O(maxLines) regardless of file size:
//
//	lines, err := logtail.Read("/var/log/app.log", 200)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//	}
//
// # Following
//
// Follower is built on hpcloud/tail with ReOpen set, the equivalent of
// tail -F. It:
//
//   - starts at a byte offset, normally the one Backlog returned, so no line
//     written between the backlog read and the start of following is lost
//   - waits for a missing file to appear
//   - reopens the file from the start after truncation, or after a rename or
//     delete followed by a new file (rotation)
//   - holds back a trailing line without a newline until it is completed
//   - strips a trailing carriage return from each line
//
// The tail goroutine hands lines over an unbuffered channel; Poll drains
// whatever is ready and never blocks. Close stops the goroutine.
//
// # Watching
//
// Watch uses fsnotify on the file's directory and signals on a channel when
// the file is written, created, renamed or removed. Callers select on it
// alongside their poll timer so new lines show up without waiting a full
// interval. The timer stays as the fallback for filesystems without change
// notifications.
//
// # Classification
//
// Classify maps a raw line to a message level by looking for a level token
// among the first few fields. Recognised spellings:
//
//   - ERROR, ERR, FATAL, PANIC, CRIT: Error
//   - WARN, WARNING: Warning
//   - INFO, STATUS, NOTICE: Status
//   - VERBOSE, TRACE: Verbose
//   - DEBUG, DBG: Debug
//
// Tokens may be bracketed ("[warn]"), suffixed with a colon ("INFO:") or
// written as key/value pairs ("level=debug"). The token is removed from the
// content since the pane prints its own level tag. Lines without a token are
// classified as Status.
//
// # Error Handling
//
// Missing files are not errors. Other I/O failures are returned wrapped with
// the operation that failed ("open log", "read log", ...).
package logtail
