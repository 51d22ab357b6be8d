package crash

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingHub(t *testing.T) (*sentry.Hub, *[]*sentry.Event) {
	t.Helper()

	var events []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			events = append(events, e)
			return nil
		},
	})
	require.NoError(t, err)
	return sentry.NewHub(client, sentry.NewScope()), &events
}

func TestGuardReportsPanicOnCallerGoroutine(t *testing.T) {
	hub, events := recordingHub(t)

	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		_ = Guard(hub, func() error { panic("unknown scrolling mode") })
	}()

	assert.Equal(t, "unknown scrolling mode", <-done)
	assert.Len(t, *events, 1)
}

func TestGuardPassesThroughErrors(t *testing.T) {
	hub, events := recordingHub(t)
	errStop := errors.New("stop")

	assert.NoError(t, Guard(hub, func() error { return nil }))
	assert.ErrorIs(t, Guard(hub, func() error { return errStop }), errStop)
	assert.Empty(t, *events)
}

func TestReportCapturesError(t *testing.T) {
	hub, events := recordingHub(t)

	Report(hub, nil)
	assert.Empty(t, *events)

	Report(hub, errors.New("window closed unexpectedly"))
	require.Len(t, *events, 1)
	require.NotEmpty(t, (*events)[0].Exception)
	assert.Equal(t, "window closed unexpectedly", (*events)[0].Exception[0].Value)
}
