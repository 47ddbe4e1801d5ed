// Package cue keeps a bounded queue of messages and renders the newest of
// them into a fixed-size window.
//
// The queue is a ring buffer: appending to a full queue overwrites the
// oldest message. A Queue has no locking and belongs to one goroutine.
//
// RenderWindow scans from newest to oldest, keeps messages at or above the
// window's minimum level until the inner height is filled, and writes them
// oldest first below enough blank rows to sit at the bottom of the window.
// An optional border line is repeated across the top and bottom.
package cue
