package config

import (
	"image"
	"image/color"
	"time"

	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/scroll"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ListConfig describes the demo list rendered inside the scroll view
type ListConfig struct {
	View       image.Rectangle // Scroll view area in screen pixels
	ItemCount  int
	ItemHeight int
	ItemGap    int
	TextInsetX int
	TextInsetY int
	SnapEvery  int // Every Nth row start becomes a snap position

	BackgroundColor color.RGBA
	ItemColor       color.RGBA
	ItemAltColor    color.RGBA
	SnapItemColor   color.RGBA
	TextColor       color.RGBA
	BorderColor     color.RGBA
	DisabledColor   color.RGBA
}

// ScrollConfig holds the scroll preferences used when nothing is saved
type ScrollConfig struct {
	Mode          scroll.Mode
	Preset        easing.Preset
	SpeedFactor   float64
	SnapThreshold float64
	Tolerance     float64
	WaitTime      time.Duration

	// Choices offered by the settings panel
	SpeedFactors   []float64
	SnapThresholds []float64
}

// HUDConfig contains the status readout configuration
type HUDConfig struct {
	X, Y       int
	LineHeight int
	TextColor  color.RGBA
	BarColor   color.RGBA
	BarBgColor color.RGBA
	BarWidth   float32
}

// StatsConfig contains runtime stats viewer settings
type StatsConfig struct {
	EnvVar string
	Addr   string
}

// Global configuration instances
var C *Config
var List ListConfig
var Scroll ScrollConfig
var HUD HUDConfig
var Stats StatsConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	Night        = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "scrollctl",
	}

	List = ListConfig{
		View:       image.Rect(20, 20, 380, 340),
		ItemCount:  60,
		ItemHeight: 36,
		ItemGap:    4,
		TextInsetX: 10,
		TextInsetY: 23,
		SnapEvery:  5,

		BackgroundColor: Night,
		ItemColor:       Slate,
		ItemAltColor:    color.RGBA{R: 50, G: 50, B: 64, A: 255},
		SnapItemColor:   DarkBlue,
		TextColor:       White,
		BorderColor:     LightBlue,
		DisabledColor:   color.RGBA{R: 90, G: 90, B: 90, A: 255},
	}

	Scroll = ScrollConfig{
		Mode:          scroll.ModeContinuous,
		Preset:        easing.Presets[3],
		SpeedFactor:   1,
		SnapThreshold: 30,
		Tolerance:     0.5,
		WaitTime:      200 * time.Millisecond,

		SpeedFactors:   []float64{0.5, 1, 2, 4},
		SnapThresholds: []float64{0, 15, 30, 60},
	}

	HUD = HUDConfig{
		X:          400,
		Y:          210,
		LineHeight: 16,
		TextColor:  BrightYellow,
		BarColor:   LightGreen,
		BarBgColor: Slate,
		BarWidth:   220,
	}

	Stats = StatsConfig{
		EnvVar: "PPROF_ENABLED",
		Addr:   "localhost:8080",
	}
}
