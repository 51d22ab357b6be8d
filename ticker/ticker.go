package ticker

import (
	"sync"

	"github.com/automoto/scrollctl/event"
)

// Ticker posts Tick once per frame while it has at least one subscriber.
// It requests frames from its source only while active, so an idle ticker
// costs nothing.
type Ticker struct {
	Tick *event.Signal[struct{}]

	source      FrameSource
	frame       FrameID
	active      bool
	dispatching bool
}

// New creates an inactive ticker driven by source.
func New(source FrameSource) *Ticker {
	t := &Ticker{
		Tick:   event.NewSignal[struct{}](),
		source: source,
	}
	t.Tick.OnListenersChanged(t.onListenersChanged)
	return t
}

// Active reports whether the ticker is currently requesting frames.
func (t *Ticker) Active() bool {
	return t.active
}

func (t *Ticker) onListenersChanged() {
	if t.Tick.ListenerCount() == 0 {
		t.stop()
	} else if !t.active {
		t.start()
	}
}

// start requests the first frame and posts a tick right away, so a fresh
// subscriber is stepped in the same call that attached it. When the start
// happens inside a tick dispatch the immediate post is skipped and the
// requested frame delivers it.
func (t *Ticker) start() {
	t.active = true
	t.frame = t.source.RequestFrame(t.onFrame)
	if t.dispatching {
		return
	}
	t.post()
}

func (t *Ticker) stop() {
	if !t.active {
		return
	}
	t.source.CancelFrame(t.frame)
	t.frame = 0
	t.active = false
}

func (t *Ticker) onFrame() {
	t.frame = 0
	if !t.active {
		return
	}
	t.frame = t.source.RequestFrame(t.onFrame)
	t.post()
}

func (t *Ticker) post() {
	t.dispatching = true
	defer func() { t.dispatching = false }()
	t.Tick.Post(struct{}{})
}

var (
	sharedOnce   sync.Once
	sharedLoop   *Loop
	sharedTicker *Ticker
)

func initShared() {
	sharedLoop = NewLoop()
	sharedTicker = New(sharedLoop)
}

// Shared returns the process-wide ticker driven by SharedLoop.
func Shared() *Ticker {
	sharedOnce.Do(initShared)
	return sharedTicker
}

// SharedLoop returns the loop behind Shared. The host must Step it once per
// frame, or Run it.
func SharedLoop() *Loop {
	sharedOnce.Do(initShared)
	return sharedLoop
}
