package cue

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/five82/msgcue/internal/message"
)

func newTestQueue(capacity int) *Queue {
	q := New(capacity)
	q.SetClock(func() time.Time {
		return time.Date(2025, 12, 13, 10, 11, 12, 0, time.UTC)
	})
	return q
}

func mustAppend(t *testing.T, q *Queue, content, level string, pause bool) {
	t.Helper()
	if err := q.Append(content, level, pause); err != nil {
		t.Fatalf("Append(%q, %q) returned error: %v", content, level, err)
	}
}

func contents(msgs []message.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Content())
	}
	return out
}

func TestNew_DefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		if got := New(capacity).Cap(); got != DefaultCapacity {
			t.Fatalf("New(%d).Cap() = %d, want %d", capacity, got, DefaultCapacity)
		}
	}
	if got := New(7).Cap(); got != 7 {
		t.Fatalf("New(7).Cap() = %d, want 7", got)
	}
}

func TestAppend_BoundedCapacity(t *testing.T) {
	tests := []struct {
		capacity int
		appends  int
	}{
		{1, 5},
		{3, 3},
		{3, 4},
		{10, 30},
		{10, 9},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("cap%d_n%d", tt.capacity, tt.appends), func(t *testing.T) {
			q := newTestQueue(tt.capacity)
			var all []string
			for i := 0; i < tt.appends; i++ {
				content := fmt.Sprintf("msg %d", i)
				all = append(all, content)
				mustAppend(t, q, content, "status", false)
				if q.Len() > q.Cap() {
					t.Fatalf("Len() = %d exceeds Cap() = %d", q.Len(), q.Cap())
				}
			}
			want := all
			if len(all) > tt.capacity {
				want = all[len(all)-tt.capacity:]
			}
			if got := contents(q.Snapshot()); !reflect.DeepEqual(got, want) {
				t.Fatalf("Snapshot() = %v, want %v", got, want)
			}
		})
	}
}

func TestAppend_InvalidLevelLeavesQueue(t *testing.T) {
	q := newTestQueue(3)
	mustAppend(t, q, "kept", "error", false)

	err := q.Append("dropped", "info", false)
	var invalid *message.InvalidLevelError
	if !errors.As(err, &invalid) {
		t.Fatalf("Append error = %v, want *InvalidLevelError", err)
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d after invalid append, want 1", q.Len())
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	q := newTestQueue(3)
	mustAppend(t, q, "pause me", "status", true)

	snap := q.Snapshot()
	var b strings.Builder
	if err := snap[0].Render(&b, 40, message.FormatNone, false, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending() = %d after rendering a snapshot copy, want 1", q.Pending())
	}
}

func TestReset(t *testing.T) {
	q := newTestQueue(2)
	mustAppend(t, q, "a", "status", false)
	mustAppend(t, q, "b", "status", false)
	mustAppend(t, q, "c", "status", false)
	q.Reset()
	if q.Len() != 0 || q.Snapshot() != nil {
		t.Fatalf("Reset left %d messages", q.Len())
	}
	mustAppend(t, q, "d", "debug", false)
	if got := contents(q.Snapshot()); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("Snapshot() after Reset = %v, want [d]", got)
	}
}
