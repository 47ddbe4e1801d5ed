// Package message defines a single leveled log message and how it renders
// into one terminal row.
//
// # Levels
//
// Five levels are ordered from most to least severe:
//
//	Error < Warning < Status < Verbose < Debug
//
// Names are matched case-insensitively. An unknown name is an
// *InvalidLevelError; there is no fallback level.
//
// # Rendering
//
// Render writes one line made of an optional level tag, the content and an
// optional "|HH:MM:SS" time tag, without a trailing newline:
//
//	[Error]disk full|09:05:07
//
// The budget counts visible columns, so the fixed styles on Error, Warning
// and Debug tags never eat into the content. Content that does not fit is
// cut in the middle around a "[...]" marker, trimming the right half first,
// until it is exactly the remaining budget. Line breaks in content are
// rendered as spaces.
//
// # Pauses
//
// A message created with pause set waits for one acknowledgement the first
// time it is rendered. The flag is cleared before the Acknowledger runs, so
// no later render pauses again, even when acknowledging fails.
package message
