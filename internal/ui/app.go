package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/msgcue/internal/config"
	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/logtail"
	"github.com/five82/msgcue/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Queue      *cue.Queue
	Source     logtail.Source // nil shows only what is already queued
	SourceName string
	Wake       <-chan struct{} // optional; polls early when it fires
	Config     config.Config
	Window     config.WindowConfig // config window with preferences applied
	PrefsPath  string
	InputTTY   bool // read keys from the terminal because stdin is piped
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	queue      *cue.Queue
	source     logtail.Source
	sourceName string
	wake       <-chan struct{}
	config     config.Config
	prefsPath  string
	pollEvery  time.Duration

	// UI state
	keys   keyMap
	help   help.Model
	styles Styles
	window config.WindowConfig
	width  int
	height int
	ready  bool
	pane   string

	// Pause state: acks counts pauses rendered but not yet acknowledged.
	// While it is non-zero, polled lines wait in heldLines.
	acks      int
	heldLines []string

	// Source state
	failures   int
	lastErr    error
	sourceDone bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	queue := opts.Queue
	if queue == nil {
		queue = cue.New(opts.Config.Capacity)
	}

	pollEvery := opts.Config.PollEvery
	if pollEvery <= 0 {
		pollEvery = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		queue:      queue,
		source:     opts.Source,
		sourceName: opts.SourceName,
		wake:       opts.Wake,
		config:     opts.Config,
		prefsPath:  prefsPath,
		pollEvery:  pollEvery,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     defaultTheme.Styles(),
		window:     opts.Window,
		sourceDone: opts.Source == nil,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return pollCmd(m.source)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refreshPane()
		return m, nil

	case pollMsg:
		if m.source == nil || m.sourceDone {
			return m, nil
		}
		return m, pollCmd(m.source)

	case linesMsg:
		return m.handleLines(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refreshPane()

	case key.Matches(msg, m.keys.Acknowledge):
		m.acknowledge()

	case key.Matches(msg, m.keys.CycleLevel):
		m.window.MinLevel = m.window.MinLevel.Next()
		m.savePrefs()
		m.refreshPane()

	case key.Matches(msg, m.keys.CycleFormat):
		m.window.LevelFormat = m.window.LevelFormat.Next()
		m.savePrefs()
		m.refreshPane()

	case key.Matches(msg, m.keys.ToggleTime):
		m.window.ShowTime = !m.window.ShowTime
		m.savePrefs()
		m.refreshPane()

	case key.Matches(msg, m.keys.ToggleBorder):
		m.window.Border = toggledBorder(m.window.Border, m.config.Window.Border)
		m.savePrefs()
		m.refreshPane()

	case key.Matches(msg, m.keys.Clear):
		m.queue.Reset()
		m.acks = 0
		held := m.heldLines
		m.heldLines = nil
		m.ingest(held)
	}
	return m, nil
}

// handleLines appends freshly polled lines, or holds them while a pause is
// waiting, and schedules the next poll.
func (m Model) handleLines(msg linesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.failures++
		m.lastErr = msg.err
		log.Printf("poll %s failed: %v", m.sourceName, msg.err)
	} else {
		m.failures = 0
		m.lastErr = nil
	}
	m.sourceDone = msg.done

	if len(msg.lines) > 0 {
		if m.acks > 0 {
			m.heldLines = append(m.heldLines, msg.lines...)
		} else {
			m.ingest(msg.lines)
		}
	}

	if m.sourceDone {
		return m, nil
	}
	return m, pollAfter(logtail.Backoff(m.failures, m.pollEvery), m.wake)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.FromWindow(m.window)); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func toggledBorder(current, configured string) string {
	if current != "" {
		return ""
	}
	if configured != "" {
		return configured
	}
	return defaultBorder
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.InputTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(New(opts), programOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
