package systems

import (
	"image/color"

	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/fonts"
	"github.com/automoto/scrollctl/ticker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const scrollbarWidth = 6

// UpdateScrollViews advances running animations by one frame, then polls
// every view's adapters. Stepping first keeps a freshly started animation
// to its immediate tick in this frame.
func UpdateScrollViews(ecs *ecs.ECS) {
	ticker.SharedLoop().Step()

	components.ScrollView.Each(ecs.World, func(entry *donburi.Entry) {
		view := components.ScrollView.Get(entry)
		for _, p := range view.Pollers {
			p.Update()
		}
	})
}

// DrawScrollViews renders the visible rows of every list.
func DrawScrollViews(ecs *ecs.ECS, screen *ebiten.Image) {
	components.ScrollView.Each(ecs.World, func(entry *donburi.Entry) {
		drawScrollView(screen, components.ScrollView.Get(entry))
	})
}

func drawScrollView(screen *ebiten.Image, view *components.ScrollViewData) {
	box := view.Surface.Box
	vector.FillRect(screen,
		float32(box.Min.X), float32(box.Min.Y),
		float32(box.Dx()), float32(box.Dy()),
		cfg.List.BackgroundColor, false)

	clip := screen.SubImage(box).(*ebiten.Image)
	offset := view.Controller.Position()
	face := fonts.Body.Get()
	stride := view.ItemHeight + view.ItemGap

	for i := max(int(offset)/stride, 0); i < len(view.Items); i++ {
		y := float64(box.Min.Y) + view.RowStart(i) - offset
		if y > float64(box.Max.Y) {
			break
		}

		vector.FillRect(clip,
			float32(box.Min.X+4), float32(y),
			float32(box.Dx()-8-scrollbarWidth), float32(view.ItemHeight),
			rowColor(view, i), false)
		text.Draw(clip, view.Items[i], face, box.Min.X+cfg.List.TextInsetX, int(y)+cfg.List.TextInsetY, cfg.List.TextColor)
	}

	drawScrollbar(screen, view)

	border := cfg.List.BorderColor
	if !view.Surface.Interactive() {
		border = cfg.List.DisabledColor
	}
	vector.StrokeRect(screen,
		float32(box.Min.X), float32(box.Min.Y),
		float32(box.Dx()), float32(box.Dy()),
		1, border, false)
}

func rowColor(view *components.ScrollViewData, i int) color.Color {
	switch {
	case view.SnapRow(i):
		return cfg.List.SnapItemColor
	case i%2 == 1:
		return cfg.List.ItemAltColor
	}
	return cfg.List.ItemColor
}

func drawScrollbar(screen *ebiten.Image, view *components.ScrollViewData) {
	extent := view.Extent()
	if extent == 0 {
		return
	}

	box := view.Surface.Box
	track := float64(box.Dy())
	thumb := max(track*track/(track+extent), 12)
	y := float64(box.Min.Y) + view.Controller.Position()/extent*(track-thumb)
	x := float32(box.Max.X - scrollbarWidth - 2)

	vector.FillRect(screen, x, float32(y), scrollbarWidth, float32(thumb), cfg.List.BorderColor, false)
}
