package logtail

import "time"

// MaxBackoff caps the delay between polls of a failing source.
const MaxBackoff = 30 * time.Second

// Backoff returns the delay before the next poll after failures consecutive
// errors: the base interval doubled per failure, capped at MaxBackoff.
func Backoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= MaxBackoff {
			return MaxBackoff
		}
	}
	return delay
}
