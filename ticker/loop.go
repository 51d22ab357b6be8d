package ticker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// FrameSource schedules callbacks for the next display frame.
type FrameSource interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Loop is a FrameSource advanced one frame per Step. The host calls Step from
// its own update (ebiten's Game.Update) or lets Run drive it from a
// time.Ticker.
//
// Frame requests and Step must come from the loop goroutine. Post is the only
// method safe to call from other goroutines.
type Loop struct {
	mu       sync.Mutex
	commands []func()

	next   FrameID
	order  []FrameID
	live   map[FrameID]func()
	frames uint64

	log logrus.FieldLogger
}

// NewLoop creates a loop with no pending frames.
func NewLoop() *Loop {
	return &Loop{
		live: make(map[FrameID]func()),
		log:  logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used by Run.
func (l *Loop) SetLogger(log logrus.FieldLogger) {
	l.log = log
}

// RequestFrame schedules fn for the next Step.
func (l *Loop) RequestFrame(fn func()) FrameID {
	l.next++
	id := l.next
	l.live[id] = fn
	l.order = append(l.order, id)
	return id
}

// CancelFrame drops a pending request. Unknown or already fired ids are
// ignored.
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.live, id)
}

// Post queues fn to run on the loop goroutine at the start of the next Step.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.commands = append(l.commands, fn)
	l.mu.Unlock()
}

// Pending returns the number of frame callbacks waiting for the next Step.
func (l *Loop) Pending() int {
	return len(l.live)
}

// Frames returns how many times Step has run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs queued commands, then every frame callback requested before this
// Step began. Callbacks requested during the Step wait for the next one.
func (l *Loop) Step() {
	l.processCommands()

	l.frames++
	batch := l.order
	l.order = nil
	for _, id := range batch {
		fn, ok := l.live[id]
		if !ok {
			continue
		}
		delete(l.live, id)
		fn()
	}
}

func (l *Loop) processCommands() {
	l.mu.Lock()
	commands := l.commands
	l.commands = nil
	l.mu.Unlock()

	for _, fn := range commands {
		fn()
	}
}

// Run steps the loop rate times per second until ctx is done.
func (l *Loop) Run(ctx context.Context, rate int) error {
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	l.log.Debugf("frame loop started at %d frames/second", rate)

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("frame loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}
