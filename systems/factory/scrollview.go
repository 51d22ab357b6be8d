package factory

import (
	"fmt"

	"github.com/automoto/scrollctl/archetypes"
	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/input"
	"github.com/automoto/scrollctl/scroll"
	"github.com/automoto/scrollctl/ticker"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScrollView spawns the demo list with wheel, drag and keyboard
// adapters reading from device.
func CreateScrollView(ecs *ecs.ECS, device input.Device, log logrus.FieldLogger, opts ...scroll.Option) *donburi.Entry {
	entry := archetypes.ScrollView.Spawn(ecs)

	surface := &scroll.Area{Box: cfg.List.View, Enabled: true}
	wheel := input.NewWheel(device, surface)
	drag := input.NewDrag(device, surface, input.AxisY)
	keys := input.NewKeyboard(device, surface, input.Repeat{
		Delay:    cfg.Input.Repeat.Delay,
		Interval: cfg.Input.Repeat.Interval,
	})

	controller := scroll.New(scroll.Config{
		Surface:  surface,
		Adapters: []scroll.Adapter{wheel, drag, keys},
		Ticker:   ticker.Shared(),
		Logger:   log.WithField("view", entry.Entity()),
	}, append([]scroll.Option{scroll.WithDragSpeed(1)}, opts...)...)

	components.ScrollView.SetValue(entry, components.ScrollViewData{
		Controller: controller,
		Surface:    surface,
		Pollers:    []components.Poller{wheel, drag, keys},
		Items: lo.Times(cfg.List.ItemCount, func(i int) string {
			return fmt.Sprintf("Row %02d", i+1)
		}),
		ItemHeight: cfg.List.ItemHeight,
		ItemGap:    cfg.List.ItemGap,
	})

	view := components.ScrollView.Get(entry)
	view.Layout()
	controller.PositionChanged.Attach(entry, func(float64) {
		components.ScrollView.Get(entry).Moves++
	})

	return entry
}
