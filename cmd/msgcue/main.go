package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/msgcue/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	follow := flag.String("follow", "", "log file to follow (optional, defaults to piped stdin)")
	plain := flag.Bool("plain", false, "redraw with plain escape sequences instead of the TUI")
	pollSeconds := flag.Int("poll", 0, "poll interval in seconds (optional, defaults to 1s)")
	capacity := flag.Int("capacity", 0, "messages kept in memory (optional, defaults to 500)")
	logPath := flag.String("log", "", "write diagnostics to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Follow:     *follow,
		Plain:      *plain,
		LogPath:    *logPath,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}
	if c := *capacity; c > 0 {
		opts.Capacity = c
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "msgcue: %v\n", err)
		return 1
	}
	return 0
}
