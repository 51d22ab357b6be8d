package ticker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listener struct{ ticks int }

func TestTickerLifecycle(t *testing.T) {
	loop := NewLoop()
	tk := New(loop)
	require.False(t, tk.Active())
	require.Equal(t, 0, loop.Pending())

	l := &listener{}
	tk.Tick.Attach(l, func(struct{}) { l.ticks++ })

	assert.True(t, tk.Active())
	assert.Equal(t, 1, l.ticks, "starting posts one tick immediately")
	assert.Equal(t, 1, loop.Pending())

	loop.Step()
	loop.Step()
	assert.Equal(t, 3, l.ticks)

	tk.Tick.Detach(l)
	assert.False(t, tk.Active())
	assert.Equal(t, 0, loop.Pending(), "stopping cancels the pending frame")

	loop.Step()
	assert.Equal(t, 3, l.ticks)
}

func TestTickerRedundantAttachDetach(t *testing.T) {
	loop := NewLoop()
	tk := New(loop)

	a, b := &listener{}, &listener{}
	tk.Tick.Attach(a, func(struct{}) { a.ticks++ })
	tk.Tick.Attach(b, func(struct{}) { b.ticks++ })
	assert.Equal(t, 1, loop.Pending(), "second subscriber must not double-start")
	assert.Equal(t, 1, a.ticks)
	assert.Equal(t, 0, b.ticks)

	tk.Tick.Detach(a)
	tk.Tick.Detach(a)
	assert.True(t, tk.Active())

	tk.Tick.Detach(b)
	tk.Tick.Detach(b)
	assert.False(t, tk.Active())
	assert.Equal(t, 0, loop.Pending())
}

func TestTickerDetachFromHandler(t *testing.T) {
	loop := NewLoop()
	tk := New(loop)

	l := &listener{}
	tk.Tick.Attach(l, func(struct{}) {
		l.ticks++
		if l.ticks == 3 {
			tk.Tick.Detach(l)
		}
	})

	for i := 0; i < 5; i++ {
		loop.Step()
	}
	assert.Equal(t, 3, l.ticks)
	assert.False(t, tk.Active())
	assert.Equal(t, 0, loop.Pending())
}

func TestTickerRestartInsideDispatch(t *testing.T) {
	loop := NewLoop()
	tk := New(loop)

	l := &listener{}
	var handler func(struct{})
	handler = func(struct{}) {
		l.ticks++
		if l.ticks == 2 {
			tk.Tick.Detach(l)
			tk.Tick.Attach(l, handler)
		}
	}
	tk.Tick.Attach(l, handler)
	require.Equal(t, 1, l.ticks)

	loop.Step()
	assert.Equal(t, 2, l.ticks, "restart inside a tick must not post re-entrantly")
	assert.True(t, tk.Active())
	assert.Equal(t, 1, loop.Pending())

	loop.Step()
	assert.Equal(t, 3, l.ticks)
}

func TestLoopPostAndCancel(t *testing.T) {
	loop := NewLoop()

	var order []string
	loop.Post(func() { order = append(order, "command") })
	loop.RequestFrame(func() { order = append(order, "frame") })
	id := loop.RequestFrame(func() { order = append(order, "cancelled") })
	loop.CancelFrame(id)
	loop.CancelFrame(id)

	loop.Step()
	assert.Equal(t, []string{"command", "frame"}, order)
	assert.Equal(t, uint64(1), loop.Frames())
}

func TestLoopRequestDuringStepWaits(t *testing.T) {
	loop := NewLoop()
	count := 0
	var again func()
	again = func() {
		count++
		loop.RequestFrame(again)
	}
	loop.RequestFrame(again)

	loop.Step()
	loop.Step()
	assert.Equal(t, 2, count)
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, 240) }()

	fired := make(chan struct{})
	loop.Post(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("posted command never ran")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
