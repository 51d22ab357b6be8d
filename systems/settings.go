package systems

import (
	"fmt"

	"github.com/automoto/scrollctl/archetypes"
	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/scroll"
	"github.com/samber/lo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Modes the demo cycles through. Snapped mode has no input behaviour, so
// it is left out.
var cycleModes = []scroll.Mode{scroll.ModeContinuous, scroll.ModeDiscrete}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from config defaults on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// DefaultSettings maps the configured defaults onto panel indexes.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		Mode:        cfg.Scroll.Mode,
		PresetIndex: max(lo.IndexOf(easing.Presets, cfg.Scroll.Preset), 0),
		SpeedIndex:  max(lo.IndexOf(cfg.Scroll.SpeedFactors, cfg.Scroll.SpeedFactor), 0),
		SnapIndex:   max(lo.IndexOf(cfg.Scroll.SnapThresholds, cfg.Scroll.SnapThreshold), 0),
	}
}

// ApplySavedPreferences copies saved preferences onto s. Values the panel
// does not offer are ignored.
func ApplySavedPreferences(s *components.SettingsData, saved *SavedPreferences) {
	if saved == nil {
		return
	}
	if mode, err := scroll.ParseMode(saved.Mode); err == nil && lo.Contains(cycleModes, mode) {
		s.Mode = mode
	} else {
		logger.WithField("mode", saved.Mode).Warn("ignoring saved scroll mode")
	}
	if i := lo.IndexOf(easing.Presets, saved.Easing); i >= 0 {
		s.PresetIndex = i
	}
	if i := lo.IndexOf(cfg.Scroll.SpeedFactors, saved.SpeedFactor); i >= 0 {
		s.SpeedIndex = i
	}
	if i := lo.IndexOf(cfg.Scroll.SnapThresholds, saved.SnapThreshold); i >= 0 {
		s.SnapIndex = i
	}
}

// Preferences converts s into its saved form.
func Preferences(s *components.SettingsData) *SavedPreferences {
	return &SavedPreferences{
		Mode:          s.Mode.String(),
		Easing:        easing.Presets[s.PresetIndex],
		SpeedFactor:   cfg.Scroll.SpeedFactors[s.SpeedIndex],
		SnapThreshold: cfg.Scroll.SnapThresholds[s.SnapIndex],
	}
}

// ScrollOptions converts s into controller options.
func ScrollOptions(s *components.SettingsData) []scroll.Option {
	opts := []scroll.Option{
		scroll.WithMode(s.Mode),
		scroll.WithSpeedFactor(cfg.Scroll.SpeedFactors[s.SpeedIndex]),
		scroll.WithSnapThreshold(cfg.Scroll.SnapThresholds[s.SnapIndex]),
		scroll.WithTolerance(cfg.Scroll.Tolerance),
		scroll.WithWaitTime(cfg.Scroll.WaitTime),
	}

	preset := easing.Presets[s.PresetIndex]
	fn, err := preset.Func()
	if err != nil {
		logger.WithError(err).WithField("preset", preset.String()).Warn("falling back to no easing")
		fn = easing.None
	}
	return append(opts, scroll.WithEasing(fn))
}

// ApplySettings pushes the current settings to every scroll view and saves
// them.
func ApplySettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	opts := ScrollOptions(s)
	components.ScrollView.Each(e.World, func(entry *donburi.Entry) {
		components.ScrollView.Get(entry).Controller.SetOptions(opts...)
	})
	_ = SavePreferences(Preferences(s))
}

func CycleMode(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	i := lo.IndexOf(cycleModes, s.Mode)
	s.Mode = cycleModes[(i+1)%len(cycleModes)]
	ApplySettings(e)
}

func CycleEasing(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.PresetIndex = (s.PresetIndex + 1) % len(easing.Presets)
	ApplySettings(e)
}

func CycleSpeed(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.SpeedIndex = (s.SpeedIndex + 1) % len(cfg.Scroll.SpeedFactors)
	ApplySettings(e)
}

func CycleSnapThreshold(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.SnapIndex = (s.SnapIndex + 1) % len(cfg.Scroll.SnapThresholds)
	ApplySettings(e)
}

// ToggleEnabled enables or disables input on every scroll view.
func ToggleEnabled(e *ecs.ECS) {
	components.ScrollView.Each(e.World, func(entry *donburi.Entry) {
		c := components.ScrollView.Get(entry).Controller
		if c.Enabled() {
			c.Disable()
		} else {
			c.Enable()
		}
	})
}

// ResetViews zeroes every controller and lays its list out again.
func ResetViews(e *ecs.ECS) {
	components.ScrollView.Each(e.World, func(entry *donburi.Entry) {
		view := components.ScrollView.Get(entry)
		view.Controller.Reset()
		view.Layout()
	})
	logger.Debug("scroll views reset")
}

// UpdateShortcuts handles the keyboard shortcuts for the settings.
func UpdateShortcuts(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionCycleMode).JustPressed {
		CycleMode(e)
	}
	if GetAction(input, cfg.ActionCycleEasing).JustPressed {
		CycleEasing(e)
	}
	if GetAction(input, cfg.ActionToggleEnabled).JustPressed {
		ToggleEnabled(e)
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		ResetViews(e)
	}
}

// Labels for the settings panel

func ModeLabel(s *components.SettingsData) string {
	return s.Mode.String()
}

func EasingLabel(s *components.SettingsData) string {
	return easing.Presets[s.PresetIndex].String()
}

func SpeedLabel(s *components.SettingsData) string {
	return fmt.Sprintf("x%g", cfg.Scroll.SpeedFactors[s.SpeedIndex])
}

func SnapLabel(s *components.SettingsData) string {
	threshold := cfg.Scroll.SnapThresholds[s.SnapIndex]
	if threshold == 0 {
		return "off"
	}
	return fmt.Sprintf("%gpx", threshold)
}

// ViewsEnabled reports whether any scroll view accepts input.
func ViewsEnabled(e *ecs.ECS) bool {
	enabled := false
	components.ScrollView.Each(e.World, func(entry *donburi.Entry) {
		enabled = enabled || components.ScrollView.Get(entry).Controller.Enabled()
	})
	return enabled
}
