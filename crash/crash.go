// Package crash forwards panics and fatal errors to sentry.
//
// ebiten calls Game.Update on its own goroutine, so a recover deferred in
// main never sees a panic raised by a system. Guard wraps each update
// instead.
package crash

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// FlushTimeout bounds how long a report waits for delivery.
const FlushTimeout = 2 * time.Second

// Guard runs fn. A panic inside fn is reported to hub and raised again.
func Guard(hub *sentry.Hub, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			hub.Recover(r)
			hub.Flush(FlushTimeout)
			panic(r)
		}
	}()
	return fn()
}

// Report captures err on hub and waits for it to be sent.
func Report(hub *sentry.Hub, err error) {
	if err == nil {
		return
	}
	hub.CaptureException(err)
	hub.Flush(FlushTimeout)
}
