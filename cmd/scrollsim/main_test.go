package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/scroll"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fastConfig(mode string, moves ...float64) simConfig {
	return simConfig{
		rate:   500,
		gap:    time.Millisecond,
		mode:   mode,
		preset: easing.Preset{Kind: easing.KindFixedTime, Value: 5},
		max:    100,
		moves:  moves,
		speed:  1,
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 1, 2.5,,-3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, got)

	got, err = parseFloats("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseFloats("1,x")
	assert.Error(t, err)
}

func TestRunSettles(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, quietLogger(), fastConfig("continuous", 40, 30))
	assert.NoError(t, err)
}

func TestRunStopsCleanlyOnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig("continuous", 40, 30)
	cfg.gap = time.Hour

	time.AfterFunc(20*time.Millisecond, cancel)
	err := run(ctx, quietLogger(), cfg)
	assert.NoError(t, err)
}

func TestRunReportsDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	cfg := fastConfig("continuous", 40)
	cfg.gap = time.Hour

	err := run(ctx, quietLogger(), cfg)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunRejectsSnappedMode(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, quietLogger(), fastConfig("snapped", 10))
	assert.ErrorIs(t, err, scroll.ErrUnknownMode)
}

func TestRunRejectsBadFlags(t *testing.T) {
	ctx := context.Background()

	err := run(ctx, quietLogger(), fastConfig("sideways"))
	assert.ErrorIs(t, err, scroll.ErrUnknownMode)

	cfg := fastConfig("continuous")
	cfg.preset = easing.Preset{Kind: "bouncy"}
	err = run(ctx, quietLogger(), cfg)
	assert.ErrorIs(t, err, easing.ErrUnknownEasing)
}
