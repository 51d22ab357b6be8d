package scroll

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/event"
	"github.com/automoto/scrollctl/ticker"
	"github.com/sirupsen/logrus"
)

// Config binds a controller to its collaborators. Only Surface and Adapters
// are usually set; the rest default to the shared ticker, the standard
// logrus logger and the wall clock.
type Config struct {
	Surface  Surface
	Adapters []Adapter
	Ticker   *ticker.Ticker
	Logger   logrus.FieldLogger
	Clock    func() time.Time
}

// Controller animates a one-dimensional position toward a destination.
//
// The controller is idle while the position sits on the snap destination and
// animating while it holds a subscription on the ticker. Every destination
// change replaces that subscription with a fresh easing stepper.
//
// A Controller is not safe for concurrent use; drive it from the goroutine
// that steps its ticker.
type Controller struct {
	BoundsChanged      *event.Signal[Bounds]
	PositionChanged    *event.Signal[float64]
	DestinationChanged *event.Signal[float64]

	surface  Surface
	adapters []Adapter
	ticker   *ticker.Ticker
	log      logrus.FieldLogger
	now      func() time.Time

	opts    Options
	enabled bool

	bounds              Bounds
	position            float64
	destination         float64
	prevDestination     float64
	snapDestination     float64
	prevSnapDestination float64

	snapPositions       []float64
	uniqueSnapPositions []float64

	// lastJump marks the most recent discrete jump. It only feeds Throttled.
	lastJump time.Time
}

// New creates an enabled controller with the default options merged with
// opts.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		BoundsChanged:      event.NewSignal[Bounds](),
		PositionChanged:    event.NewSignal[float64](),
		DestinationChanged: event.NewSignal[float64](),

		surface:  cfg.Surface,
		adapters: cfg.Adapters,
		ticker:   cfg.Ticker,
		log:      cfg.Logger,
		now:      cfg.Clock,
		opts:     DefaultOptions(),
	}
	if c.ticker == nil {
		c.ticker = ticker.Shared()
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.uniqueSnapPositions = uniqueSnapPositions(nil, c.bounds)
	c.SetOptions(opts...)
	c.attachAdapters()
	c.enabled = true

	return c
}

// Enable connects the input adapters, makes the surface interactive and
// re-posts the current position and snap destination.
func (c *Controller) Enable() {
	c.attachAdapters()
	c.enabled = true
	c.PositionChanged.Post(c.position)
	c.DestinationChanged.Post(c.snapDestination)
	if c.surface != nil {
		c.surface.SetInteractive(true)
	}
	c.log.Debug("scroll controller enabled")
}

// Disable disconnects the input adapters and makes the surface
// non-interactive. An animation already in flight runs to completion.
func (c *Controller) Disable() {
	for _, a := range c.adapters {
		a.MovedBy().Detach(c)
	}
	c.enabled = false
	if c.surface != nil {
		c.surface.SetInteractive(false)
	}
	c.log.Debug("scroll controller disabled")
}

// Enabled reports whether the input adapters are connected.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Close detaches the controller from its adapters and its ticker.
func (c *Controller) Close() {
	for _, a := range c.adapters {
		a.MovedBy().Detach(c)
	}
	c.ticker.Tick.Detach(c)
	c.enabled = false
}

func (c *Controller) attachAdapters() {
	for _, a := range c.adapters {
		if !a.MovedBy().Has(c) {
			a.MovedBy().Attach(c, c.onMoved)
		}
	}
}

// SetOptions merges opts into the current options and forwards the result
// to every adapter that reads them.
func (c *Controller) SetOptions(opts ...Option) {
	c.opts = c.opts.Apply(opts...)
	if c.opts.Easing == nil {
		c.opts.Easing = easing.None
	}
	for _, a := range c.adapters {
		if r, ok := a.(OptionsReceiver); ok {
			r.ApplyOptions(c.opts)
		}
	}
	c.log.WithFields(logrus.Fields{
		"mode":        c.opts.Mode.String(),
		"speedFactor": c.opts.SpeedFactor,
	}).Debug("scroll options updated")
}

// Options returns a copy of the current options.
func (c *Controller) Options() Options {
	return c.opts
}

func (c *Controller) Position() float64 {
	return c.position
}

// SetPosition moves the position without animating, then resolves the
// unclamped value as the new destination.
func (c *Controller) SetPosition(v float64) {
	c.position = c.bounds.Clamp(v)
	c.PositionChanged.Post(c.position)
	c.SetDestination(v)
}

func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// SetBounds replaces the bounds and re-clamps destination and position
// against them.
func (c *Controller) SetBounds(b Bounds) {
	c.bounds = b.Ordered()
	c.uniqueSnapPositions = uniqueSnapPositions(c.snapPositions, c.bounds)
	c.BoundsChanged.Post(c.bounds)

	if c.bounds.Clamp(c.destination) != c.destination {
		c.resolveDestination(c.destination)
	}
	c.SetPosition(c.position)
}

// Destination returns the clamped destination before snapping.
func (c *Controller) Destination() float64 {
	return c.destination
}

// SnapDestination returns the destination the animation is heading to.
func (c *Controller) SnapDestination() float64 {
	return c.snapDestination
}

// SetDestination starts animating toward v. A value equal to the current
// destination is ignored.
func (c *Controller) SetDestination(v float64) {
	if v == c.destination {
		return
	}
	c.resolveDestination(v)
}

func (c *Controller) resolveDestination(v float64) {
	c.prevDestination = c.destination
	c.destination = c.bounds.Clamp(v)
	direction := sign(c.destination - c.prevDestination)

	c.prevSnapDestination = c.snapDestination
	c.snapDestination = snapToPoint(c.snapPositions, c.destination, direction, c.opts.SnapThreshold)

	c.ticker.Tick.Detach(c)
	c.ticker.Tick.Attach(c, c.newTickHandler(c.prevSnapDestination, c.snapDestination))
	c.DestinationChanged.Post(c.snapDestination)
}

// newTickHandler builds the per-frame step for one animation. A zero
// distance ends the animation, but the tolerance check below still runs
// in the same tick.
func (c *Controller) newTickHandler(prev, dest float64) event.Handler[struct{}] {
	step := c.opts.Easing(prev, dest, c.opts.Params())
	return func(struct{}) {
		distance := c.snapDestination - c.position
		if distance == 0 {
			c.ticker.Tick.Detach(c)
		}
		if math.Abs(distance) < c.opts.Tolerance {
			c.position = c.snapDestination
		} else {
			c.position = step(c.position)
		}
		c.PositionChanged.Post(c.position)
	}
}

// Animating reports whether the controller is subscribed to the ticker.
func (c *Controller) Animating() bool {
	return c.ticker.Tick.Has(c)
}

// SnapPositions returns a copy of the raw snap positions.
func (c *Controller) SnapPositions() []float64 {
	return append([]float64{}, c.snapPositions...)
}

// SetSnapPositions replaces the raw snap positions. Duplicates and points
// outside the bounds are allowed.
func (c *Controller) SetSnapPositions(positions []float64) {
	c.snapPositions = append([]float64{}, positions...)
	c.uniqueSnapPositions = uniqueSnapPositions(c.snapPositions, c.bounds)
}

// UniqueSnapPositions returns the sorted discrete-mode stops, bounds
// included.
func (c *Controller) UniqueSnapPositions() []float64 {
	return append([]float64{}, c.uniqueSnapPositions...)
}

// MoveBy applies an input delta according to the current mode.
func (c *Controller) MoveBy(delta float64) error {
	switch c.opts.Mode {
	case ModeContinuous:
		c.SetDestination(c.destination + delta*c.opts.SpeedFactor)
	case ModeDiscrete:
		if next, ok := nextSnapPosition(c.uniqueSnapPositions, c.position, delta); ok {
			c.SetDestination(next)
		}
		c.lastJump = c.now()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, c.opts.Mode)
	}
	return nil
}

// Throttled reports whether the last discrete jump happened less than
// WaitTime ago. Jumps are not suppressed while throttled.
func (c *Controller) Throttled() bool {
	if c.lastJump.IsZero() {
		return false
	}
	return c.now().Sub(c.lastJump) < c.opts.WaitTime
}

// onMoved is attached to every adapter. A mode without dispatch behaviour is
// a configuration error, so it is fatal here.
func (c *Controller) onMoved(delta float64) {
	if err := c.MoveBy(delta); err != nil {
		c.log.WithError(err).WithField("delta", delta).Error("cannot dispatch input delta")
		panic(err)
	}
}

// Reset zeroes position, destination, bounds and snap state. Listeners and
// options are kept.
func (c *Controller) Reset() {
	c.snapPositions = nil
	c.position = 0
	c.destination = 0
	c.prevDestination = 0
	c.snapDestination = 0
	c.prevSnapDestination = 0
	c.bounds = Bounds{}
	c.uniqueSnapPositions = uniqueSnapPositions(nil, c.bounds)
	c.lastJump = time.Time{}
}
