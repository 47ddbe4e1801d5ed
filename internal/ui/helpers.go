package ui

import (
	"fmt"
	"time"

	"github.com/five82/msgcue/internal/logtail"
)

// humanizeRetry formats the delay before the next poll after failures.
func humanizeRetry(failures int, base time.Duration) string {
	return humanizeDuration(logtail.Backoff(failures, base))
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}
