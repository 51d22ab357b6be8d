package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/easing"
	"github.com/automoto/scrollctl/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRoundTrip(t *testing.T) {
	want := components.SettingsData{
		Mode:        scroll.ModeDiscrete,
		PresetIndex: 5,
		SpeedIndex:  2,
		SnapIndex:   3,
	}

	data, err := json.Marshal(Preferences(&want))
	require.NoError(t, err)

	var saved SavedPreferences
	require.NoError(t, json.Unmarshal(data, &saved))

	got := DefaultSettings()
	ApplySavedPreferences(&got, &saved)
	assert.Equal(t, want, got)
}

func TestApplySavedPreferencesIgnoresUnknownValues(t *testing.T) {
	defaults := DefaultSettings()

	tests := []struct {
		name  string
		saved *SavedPreferences
		want  components.SettingsData
	}{
		{
			name:  "nothing saved",
			saved: nil,
			want:  defaults,
		},
		{
			name: "unknown mode",
			saved: &SavedPreferences{
				Mode:          "sideways",
				Easing:        easing.Presets[1],
				SpeedFactor:   cfg.Scroll.SpeedFactors[0],
				SnapThreshold: cfg.Scroll.SnapThresholds[0],
			},
			want: components.SettingsData{
				Mode:        defaults.Mode,
				PresetIndex: 1,
				SpeedIndex:  0,
				SnapIndex:   0,
			},
		},
		{
			name: "snapped mode is not offered",
			saved: &SavedPreferences{
				Mode:          scroll.ModeSnapped.String(),
				Easing:        easing.Presets[0],
				SpeedFactor:   cfg.Scroll.SpeedFactors[3],
				SnapThreshold: cfg.Scroll.SnapThresholds[1],
			},
			want: components.SettingsData{
				Mode:        defaults.Mode,
				PresetIndex: 0,
				SpeedIndex:  3,
				SnapIndex:   1,
			},
		},
		{
			name: "values outside the choices",
			saved: &SavedPreferences{
				Mode:          scroll.ModeDiscrete.String(),
				Easing:        easing.Preset{Kind: easing.KindFixedTime, Value: 7},
				SpeedFactor:   3,
				SnapThreshold: 12,
			},
			want: components.SettingsData{
				Mode:        scroll.ModeDiscrete,
				PresetIndex: defaults.PresetIndex,
				SpeedIndex:  defaults.SpeedIndex,
				SnapIndex:   defaults.SnapIndex,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultSettings()
			ApplySavedPreferences(&got, tt.saved)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScrollOptionsFromSettings(t *testing.T) {
	s := components.SettingsData{
		Mode:        scroll.ModeDiscrete,
		PresetIndex: 3,
		SpeedIndex:  2,
		SnapIndex:   0,
	}

	o := scroll.DefaultOptions().Apply(ScrollOptions(&s)...)

	assert.Equal(t, scroll.ModeDiscrete, o.Mode)
	assert.Equal(t, cfg.Scroll.SpeedFactors[2], o.SpeedFactor)
	assert.Equal(t, cfg.Scroll.SnapThresholds[0], o.SnapThreshold)
	assert.Equal(t, cfg.Scroll.Tolerance, o.Tolerance)
	assert.Equal(t, cfg.Scroll.WaitTime, o.WaitTime)
	assert.NotNil(t, o.Easing)
}

func TestScrollOptionsForEveryPreset(t *testing.T) {
	for i, preset := range easing.Presets {
		s := DefaultSettings()
		s.PresetIndex = i

		o := scroll.DefaultOptions().Apply(ScrollOptions(&s)...)
		assert.NotNil(t, o.Easing, preset.String())
	}
}
