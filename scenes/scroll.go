package scenes

import (
	"sync"

	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/systems"
	"github.com/automoto/scrollctl/systems/factory"
	"github.com/automoto/scrollctl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScrollScene shows one scrollable list next to the settings panel
type ScrollScene struct {
	ecs        *ecs.ECS
	settingsUI *ui.SettingsUI
	log        logrus.FieldLogger
	prefs      *systems.SavedPreferences
	once       sync.Once
}

// NewScrollScene creates the scene. prefs may be nil.
func NewScrollScene(log logrus.FieldLogger, prefs *systems.SavedPreferences) *ScrollScene {
	return &ScrollScene{log: log, prefs: prefs}
}

func (s *ScrollScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
	s.settingsUI.Update()
}

func (s *ScrollScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Night)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.settingsUI.UI.Draw(screen)
}

func (s *ScrollScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	settings := systems.GetOrCreateSettings(s.ecs)
	systems.ApplySavedPreferences(settings, s.prefs)

	device := systems.NewDevice(s.ecs)
	factory.CreateScrollView(s.ecs, device, s.log, systems.ScrollOptions(settings)...)

	// Input first so the device sees this frame's keys
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateShortcuts)
	s.ecs.AddSystem(systems.UpdateScrollViews)

	s.ecs.AddRenderer(cfg.Default, systems.DrawScrollViews)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	s.settingsUI = ui.NewSettingsUI(s.ecs)
}
