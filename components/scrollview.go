package components

import (
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/scroll"
	"github.com/samber/lo"
	"github.com/yohamta/donburi"
)

// Poller is an input adapter that samples its device once per frame.
type Poller interface {
	Update()
}

// ScrollViewData binds a scroll controller to the list it scrolls.
type ScrollViewData struct {
	Controller *scroll.Controller
	Surface    *scroll.Area
	Pollers    []Poller

	Items      []string
	ItemHeight int
	ItemGap    int

	// Position changes seen since the view was created, shown by the HUD
	Moves int
}

// Extent is the scrollable length: content height minus the visible height.
func (v *ScrollViewData) Extent() float64 {
	content := len(v.Items)*(v.ItemHeight+v.ItemGap) - v.ItemGap
	return float64(max(content-v.Surface.Box.Dy(), 0))
}

// RowStart returns the scroll position that aligns row i with the top edge.
func (v *ScrollViewData) RowStart(i int) float64 {
	return float64(i * (v.ItemHeight + v.ItemGap))
}

// SnapRow reports whether row i starts a snap section.
func (v *ScrollViewData) SnapRow(i int) bool {
	return cfg.List.SnapEvery > 0 && i%cfg.List.SnapEvery == 0
}

// Layout pushes the list geometry into the controller: bounds cover the
// whole list and every snap row start becomes a snap position.
func (v *ScrollViewData) Layout() {
	v.Controller.SetBounds(scroll.Bounds{Min: 0, Max: v.Extent()})
	v.Controller.SetSnapPositions(lo.FilterMap(lo.Range(len(v.Items)), func(i int, _ int) (float64, bool) {
		return v.RowStart(i), v.SnapRow(i)
	}))
}

var ScrollView = donburi.NewComponentType[ScrollViewData]()
