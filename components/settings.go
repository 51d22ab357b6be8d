package components

import (
	"github.com/automoto/scrollctl/scroll"
	"github.com/yohamta/donburi"
)

// SettingsData stores the scroll preferences chosen in the settings panel.
// The indexes point into config.Scroll and easing.Presets.
type SettingsData struct {
	Mode        scroll.Mode
	PresetIndex int
	SpeedIndex  int
	SnapIndex   int
}

// Settings is the component type for the settings panel state
var Settings = donburi.NewComponentType[SettingsData]()
