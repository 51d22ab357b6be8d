// Command scrollsim drives a scroll controller without a window and logs
// every position it passes through.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/scroll"
	"github.com/automoto/scrollctl/ticker"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type simConfig struct {
	rate      int
	gap       time.Duration
	mode      string
	preset    easing.Preset
	max       float64
	snaps     []float64
	moves     []float64
	threshold float64
	speed     float64
}

func main() {
	var (
		cfg   simConfig
		kind  string
		snaps string
		moves string
		debug bool
	)
	flag.IntVar(&cfg.rate, "rate", 60, "frames per second")
	flag.DurationVar(&cfg.gap, "gap", 250*time.Millisecond, "delay between moves")
	flag.StringVar(&cfg.mode, "mode", scroll.ModeContinuous.String(), "scrolling mode: continuous or discrete")
	flag.StringVar(&kind, "easing", string(easing.KindAccelerating), "easing: none, accelerating, fixed-time or fixed-speed")
	flag.Float64Var(&cfg.preset.Value, "value", 0.2, "easing acceleration, tick count or speed")
	flag.StringVar(&cfg.preset.Curve, "curve", "", "curve for fixed-time and fixed-speed: "+strings.Join(easing.CurveNames(), ", "))
	flag.Float64Var(&cfg.max, "max", 1000, "upper scroll bound")
	flag.StringVar(&snaps, "snap", "", "comma separated snap positions")
	flag.Float64Var(&cfg.threshold, "threshold", 0, "snap threshold")
	flag.Float64Var(&cfg.speed, "speed", 1, "speed factor")
	flag.StringVar(&moves, "moves", "100,100,-50", "comma separated input deltas")
	flag.BoolVar(&debug, "debug", false, "log every frame")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg.preset.Kind = easing.Kind(kind)
	var err error
	if cfg.snaps, err = parseFloats(snaps); err != nil {
		log.WithError(err).Fatal("invalid -snap")
	}
	if cfg.moves, err = parseFloats(moves); err != nil {
		log.WithError(err).Fatal("invalid -moves")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

func run(ctx context.Context, log *logrus.Logger, cfg simConfig) error {
	mode, err := scroll.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	fn, err := cfg.preset.Func()
	if err != nil {
		return err
	}

	loop := ticker.NewLoop()
	loop.SetLogger(log)

	c := scroll.New(scroll.Config{
		Ticker: ticker.New(loop),
		Logger: log,
	},
		scroll.WithMode(mode),
		scroll.WithEasing(fn),
		scroll.WithSpeedFactor(cfg.speed),
		scroll.WithSnapThreshold(cfg.threshold),
	)
	c.SetBounds(scroll.Bounds{Min: 0, Max: cfg.max})
	c.SetSnapPositions(cfg.snaps)

	c.DestinationChanged.Attach(log, func(v float64) {
		log.WithField("snap", v).Info("destination changed")
	})
	c.PositionChanged.Attach(log, func(v float64) {
		log.WithFields(logrus.Fields{
			"frame":    loop.Frames(),
			"position": v,
		}).Debug("position")
	})

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go feed(ctx, loop, c, cfg, cancel)

	log.WithFields(logrus.Fields{
		"mode":   mode.String(),
		"easing": cfg.preset.String(),
		"moves":  len(cfg.moves),
	}).Info("simulation started")

	err = loop.Run(ctx, cfg.rate)
	if !errors.Is(err, context.Canceled) {
		return err
	}

	fields := logrus.Fields{
		"position": c.Position(),
		"frames":   loop.Frames(),
	}
	switch cause := context.Cause(ctx); {
	case errors.Is(cause, errSettled):
		log.WithFields(fields).Info("simulation settled")
	case errors.Is(cause, context.Canceled):
		log.WithFields(fields).Info("simulation interrupted")
	default:
		return cause
	}
	return nil
}

var errSettled = errors.New("settled")

// feed posts the scripted moves onto the loop, then waits for the
// controller to come to rest.
func feed(ctx context.Context, loop *ticker.Loop, c *scroll.Controller, cfg simConfig, cancel context.CancelCauseFunc) {
	for _, delta := range cfg.moves {
		select {
		case <-ctx.Done():
			return
		case <-time.After(cfg.gap):
		}
		loop.Post(func() {
			if err := c.MoveBy(delta); err != nil {
				cancel(err)
			}
		})
	}

	poll := time.NewTicker(time.Second / time.Duration(max(cfg.rate, 1)))
	defer poll.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-poll.C:
			loop.Post(func() {
				if !c.Animating() {
					cancel(errSettled)
				}
			})
		}
	}
}

func parseFloats(s string) ([]float64, error) {
	fields := lo.Filter(strings.Split(s, ","), func(f string, _ int) bool {
		return strings.TrimSpace(f) != ""
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
