package systems

import (
	"fmt"

	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudBarHeight = 6

// DrawHUD renders the controller readouts below the settings panel.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.ScrollView.First(ecs.World)
	if !ok {
		return
	}
	view := components.ScrollView.Get(entry)
	c := view.Controller
	face := fonts.Small.Get()

	lines := []string{
		fmt.Sprintf("position     %8.2f", c.Position()),
		fmt.Sprintf("destination  %8.2f", c.Destination()),
		fmt.Sprintf("snap dest    %8.2f", c.SnapDestination()),
		fmt.Sprintf("animating %t  throttled %t", c.Animating(), c.Throttled()),
		fmt.Sprintf("enabled %t  moves %d", c.Enabled(), view.Moves),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, cfg.HUD.X, cfg.HUD.Y+i*cfg.HUD.LineHeight, cfg.HUD.TextColor)
	}

	// Progress through the list
	barY := float32(cfg.HUD.Y + len(lines)*cfg.HUD.LineHeight)
	vector.FillRect(screen, float32(cfg.HUD.X), barY, cfg.HUD.BarWidth, hudBarHeight, cfg.HUD.BarBgColor, false)
	if extent := view.Extent(); extent > 0 {
		ratio := float32(c.Position() / extent)
		vector.FillRect(screen, float32(cfg.HUD.X), barY, cfg.HUD.BarWidth*ratio, hudBarHeight, cfg.HUD.BarColor, false)
	}
}
