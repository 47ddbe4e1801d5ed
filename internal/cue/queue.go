package cue

import (
	"time"

	"github.com/five82/msgcue/internal/message"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 500

// Queue is a bounded, oldest-first message buffer. Appending to a full queue
// evicts the oldest message. A Queue is owned by a single goroutine.
type Queue struct {
	ring  []*message.Message
	head  int // index of the oldest message
	count int
	now   func() time.Time
}

// New creates an empty queue holding at most capacity messages.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		ring: make([]*message.Message, capacity),
		now:  time.Now,
	}
}

// SetClock replaces the time source used to stamp appended messages.
func (q *Queue) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	q.now = now
}

// Append adds a message at the newest end. An unknown level name returns a
// *message.InvalidLevelError and leaves the queue untouched.
func (q *Queue) Append(content, levelName string, pause bool) error {
	msg, err := message.NewAt(content, levelName, pause, q.now())
	if err != nil {
		return err
	}
	if q.count == len(q.ring) {
		q.ring[q.head] = msg
		q.head = (q.head + 1) % len(q.ring)
		return nil
	}
	q.ring[(q.head+q.count)%len(q.ring)] = msg
	q.count++
	return nil
}

// Len returns the number of retained messages.
func (q *Queue) Len() int { return q.count }

// Cap returns the maximum number of retained messages.
func (q *Queue) Cap() int { return len(q.ring) }

// at returns the i-th oldest message.
func (q *Queue) at(i int) *message.Message {
	return q.ring[(q.head+i)%len(q.ring)]
}

// Snapshot returns copies of the retained messages, oldest first.
func (q *Queue) Snapshot() []message.Message {
	if q.count == 0 {
		return nil
	}
	out := make([]message.Message, q.count)
	for i := range out {
		out[i] = *q.at(i)
	}
	return out
}

// Pending counts retained messages whose pause has not been consumed yet.
func (q *Queue) Pending() int {
	n := 0
	for i := 0; i < q.count; i++ {
		if q.at(i).PendingPause() {
			n++
		}
	}
	return n
}

// Reset drops every message, keeping the capacity.
func (q *Queue) Reset() {
	clear(q.ring)
	q.head = 0
	q.count = 0
}
