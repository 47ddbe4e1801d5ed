package logtail

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

const streamBuffer = 1024

// Stream turns a blocking reader such as piped stdin into a polled Source.
// A single goroutine scans the reader; Poll never blocks.
type Stream struct {
	lines chan string

	mu   sync.Mutex
	err  error
	done bool
}

// NewStream starts scanning r.
func NewStream(r io.Reader) *Stream {
	s := &Stream{lines: make(chan string, streamBuffer)}
	go s.scan(r)
	return s
}

func (s *Stream) scan(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	s.mu.Lock()
	if err := scanner.Err(); err != nil {
		s.err = fmt.Errorf("read input: %w", err)
	}
	s.mu.Unlock()
	close(s.lines)
}

// Poll drains whatever lines are buffered. Once the reader is exhausted and
// drained, Done reports true; a scan error is returned once.
func (s *Stream) Poll() ([]string, error) {
	var out []string
	for {
		select {
		case line, ok := <-s.lines:
			if !ok {
				s.mu.Lock()
				s.done = true
				err := s.err
				s.err = nil
				s.mu.Unlock()
				return out, err
			}
			out = append(out, line)
		default:
			return out, nil
		}
	}
}

// Done reports whether the reader has been fully consumed.
func (s *Stream) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
