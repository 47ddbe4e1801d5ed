package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/five82/msgcue/internal/config"
	"github.com/five82/msgcue/internal/console"
	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/logtail"
	"github.com/five82/msgcue/internal/prefs"
	"github.com/five82/msgcue/internal/ui"
)

// Options configure the msgcue application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/msgcue/prefs.toml
	Follow     string // overrides the config's follow file
	PollEvery  int    // seconds; zero uses the config
	Capacity   int    // zero uses the config
	Plain      bool   // redraw with escape sequences instead of the TUI
	LogPath    string // diagnostics file; empty discards them in TUI mode
}

// session is everything Run assembles before handing off to a front end.
type session struct {
	cfg        config.Config
	window     config.WindowConfig
	prefsPath  string
	queue      *cue.Queue
	source     logtail.Source
	sourceName string
	watch      *logtail.Watch // nil when the source cannot be watched
	pipedInput bool
}

func (s *session) wake() <-chan struct{} {
	if s.watch == nil {
		return nil
	}
	return s.watch.Wake()
}

func (s *session) close() {
	if s.watch != nil {
		_ = s.watch.Close()
	}
	if c, ok := s.source.(io.Closer); ok {
		_ = c.Close()
	}
}

// Run boots msgcue until the user quits, the input ends (plain mode) or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	closeLog, err := setupLogging(opts.LogPath, !opts.Plain)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := prepare(opts, os.Stdin)
	if err != nil {
		return err
	}
	defer s.close()

	if opts.Plain {
		prompt, closePrompt, err := console.OpenPrompt(os.Stdout)
		if err != nil {
			return err
		}
		defer closePrompt()
		return RunPlain(ctx, PlainOptions{
			Queue:  s.queue,
			Source: s.source,
			Wake:   s.wake(),
			Config: s.cfg,
			Window: s.window,
			Out:    os.Stdout,
			Ack:    prompt,
			Size: func() (int, int) {
				return console.Size(int(os.Stdout.Fd()), fallbackWidth, fallbackHeight)
			},
		})
	}

	return ui.Run(ctx, ui.Options{
		Queue:      s.queue,
		Source:     s.source,
		SourceName: s.sourceName,
		Wake:       s.wake(),
		Config:     s.cfg,
		Window:     s.window,
		PrefsPath:  s.prefsPath,
		InputTTY:   s.pipedInput,
	})
}

// prepare loads settings, builds the queue and picks the message source:
// the follow file when one is configured, otherwise stdin when it is piped.
func prepare(opts Options, stdin *os.File) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Override(config.Overrides{
		Follow:      opts.Follow,
		PollSeconds: opts.PollEvery,
		Capacity:    opts.Capacity,
	})

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	s := &session{
		cfg:       cfg,
		window:    prefs.Load(prefsPath).Apply(cfg.Window),
		prefsPath: prefsPath,
		queue:     cue.New(cfg.Capacity),
	}

	switch {
	case cfg.Follow != "":
		offset, err := seedBacklog(s.queue, cfg.Follow, cfg.Backlog)
		if err != nil {
			return nil, err
		}
		follower, err := logtail.NewFollower(cfg.Follow, offset)
		if err != nil {
			return nil, fmt.Errorf("follow %s: %w", cfg.Follow, err)
		}
		s.source = follower
		s.sourceName = follower.Path()
		if watch, err := logtail.NewWatch(cfg.Follow); err != nil {
			log.Printf("watch %s: %v (polling only)", cfg.Follow, err)
		} else {
			s.watch = watch
		}
	case stdin != nil && !term.IsTerminal(int(stdin.Fd())):
		s.source = logtail.NewStream(stdin)
		s.sourceName = "stdin"
		s.pipedInput = true
	}
	return s, nil
}

// seedBacklog loads the tail of path into q and returns the offset the read
// ended at. Backlog lines never pause.
func seedBacklog(q *cue.Queue, path string, lines int) (int64, error) {
	backlog, offset, err := logtail.Backlog(path, lines)
	if err != nil {
		return 0, fmt.Errorf("read backlog: %w", err)
	}
	if err := logtail.Feed(q, backlog, nil); err != nil {
		return 0, fmt.Errorf("load backlog: %w", err)
	}
	return offset, nil
}

// setupLogging routes the standard logger. A TUI owns the terminal, so
// without a log file its diagnostics are discarded.
func setupLogging(path string, tui bool) (func(), error) {
	if path == "" {
		if tui {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "msgcue")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
