package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/five82/msgcue/internal/config"
	"github.com/five82/msgcue/internal/console"
	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/logtail"
	"github.com/five82/msgcue/internal/message"
)

const (
	defaultPollInterval = time.Second
	fallbackWidth       = 80
	fallbackHeight      = 24
)

// PlainOptions configure the plain redraw loop.
type PlainOptions struct {
	Queue  *cue.Queue
	Source logtail.Source  // nil renders the queue once
	Wake   <-chan struct{} // optional; polls early when it fires
	Config config.Config
	Window config.WindowConfig
	Out    io.Writer
	Ack    message.Acknowledger // blocks on paused messages; nil never waits
	Size   func() (width, height int)
}

// RunPlain polls the source and redraws the window whenever new lines
// arrive. Paused messages block on Ack while drawn. It returns when the
// source is exhausted or ctx is cancelled.
func RunPlain(ctx context.Context, opts PlainOptions) error {
	interval := opts.Config.PollEvery
	if interval <= 0 {
		interval = defaultPollInterval
	}
	size := opts.Size
	if size == nil {
		size = func() (int, int) { return fallbackWidth, fallbackHeight }
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	failures := 0
	dirty := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-opts.Wake:
		}

		done := opts.Source == nil
		if opts.Source != nil {
			lines, err := opts.Source.Poll()
			if err != nil {
				failures++
				log.Printf("poll failed: %v", err)
			} else {
				failures = 0
			}
			if len(lines) > 0 {
				if err := logtail.Feed(opts.Queue, lines, opts.Config.ShouldPause); err != nil {
					log.Printf("append message: %v", err)
				}
				dirty = true
			}
			done = sourceDone(opts.Source)
		}

		if dirty {
			if err := redraw(opts, size); err != nil {
				return err
			}
			dirty = false
		}
		if done {
			return nil
		}
		timer.Reset(logtail.Backoff(failures, interval))
	}
}

// redraw clears the screen and renders the window one row short of the
// terminal, leaving room for the pause prompt.
func redraw(opts PlainOptions, size func() (int, int)) error {
	if err := console.Clear(opts.Out); err != nil {
		return err
	}
	width, height := size()
	win := opts.Window.Resolve(width, max(height-1, 0))
	if err := opts.Queue.RenderWindow(opts.Out, win, opts.Ack); err != nil {
		return fmt.Errorf("render window: %w", err)
	}
	return nil
}

func sourceDone(src logtail.Source) bool {
	s, ok := src.(interface{ Done() bool })
	return ok && s.Done()
}
