package logtail

import (
	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/message"
)

// Feed classifies each line and appends it to q. pause decides which levels
// wait for acknowledgement; nil never pauses.
func Feed(q *cue.Queue, lines []string, pause func(message.Level) bool) error {
	for len(lines) > 0 {
		n, err := FeedUntilPause(q, lines, pause)
		if err != nil {
			return err
		}
		lines = lines[n:]
	}
	return nil
}

// FeedUntilPause appends lines up to and including the first one that
// pauses, and returns how many lines it consumed.
func FeedUntilPause(q *cue.Queue, lines []string, pause func(message.Level) bool) (int, error) {
	for i, line := range lines {
		entry := Classify(line)
		paused := pause != nil && pause(entry.Level)
		if err := q.Append(entry.Content, entry.Level.String(), paused); err != nil {
			return i + 1, err
		}
		if paused {
			return i + 1, nil
		}
	}
	return len(lines), nil
}
