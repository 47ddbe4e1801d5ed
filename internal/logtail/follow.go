package logtail

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/hpcloud/tail"
)

// Source yields lines that arrived since the previous Poll.
type Source interface {
	Poll() ([]string, error)
}

// Follower tails a file from a byte offset. The file is reopened when it is
// truncated, renamed away or deleted, so rotated logs are read from the start
// of the new file. A trailing line without a newline is held back until it is
// completed. A missing file is waited for.
type Follower struct {
	tail   *tail.Tail
	closed bool
}

// NewFollower follows path starting at offset. Pass the offset returned by
// Backlog to continue exactly where the backlog ended.
func NewFollower(path string, offset int64) (*Follower, error) {
	t, err := tail.TailFile(path, tail.Config{
		Location: &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		Follow:   true,
		ReOpen:   true,
		Logger:   log.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("tail log: %w", err)
	}
	return &Follower{tail: t}, nil
}

// Path returns the followed file.
func (f *Follower) Path() string { return f.tail.Filename }

// Poll drains the lines read since the last call without blocking. Once the
// tail stops, its error is returned once.
func (f *Follower) Poll() ([]string, error) {
	var out []string
	for {
		select {
		case line, ok := <-f.tail.Lines:
			if !ok {
				return out, f.stopped()
			}
			if line.Err != nil {
				return out, fmt.Errorf("tail log: %w", line.Err)
			}
			out = append(out, strings.TrimSuffix(line.Text, "\r"))
		default:
			return out, nil
		}
	}
}

func (f *Follower) stopped() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if err := f.tail.Err(); err != nil {
		return fmt.Errorf("tail log: %w", err)
	}
	return nil
}

// Close stops tailing and releases the file watch.
func (f *Follower) Close() error {
	// A line may be mid-send on the unbuffered channel; drain it so the tail
	// goroutine can observe the stop.
	go func() {
		for range f.tail.Lines {
		}
	}()
	err := f.tail.Stop()
	f.tail.Cleanup()
	return err
}
