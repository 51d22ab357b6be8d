package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/scrollctl/components"
	"github.com/automoto/scrollctl/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// settingRow is one "Name: value [Change]" line of the panel
type settingRow struct {
	title  string
	value  func(*components.SettingsData) string
	change func(*ecs.ECS)
	label  *widget.Label
}

// SettingsUI is the ebitenui panel that edits the scroll preferences
type SettingsUI struct {
	UI *ebitenui.UI

	ecs  *ecs.ECS
	rows []*settingRow

	enableButton *widget.Button

	titleFace text.Face
	smallFace text.Face
}

// NewSettingsUI creates the settings panel for the scroll views in e
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{
		ecs: e,
		rows: []*settingRow{
			{title: "Mode:", value: systems.ModeLabel, change: systems.CycleMode},
			{title: "Easing:", value: systems.EasingLabel, change: systems.CycleEasing},
			{title: "Speed:", value: systems.SpeedLabel, change: systems.CycleSpeed},
			{title: "Snap:", value: systems.SnapLabel, change: systems.CycleSnapThreshold},
		},
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(20)),
		)),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SCROLLING", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	for _, row := range sui.rows {
		panel.AddChild(sui.buildRow(row))
	}

	panel.AddChild(sui.buildButtonsContainer())
	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildRow(row *settingRow) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(row.title, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	changeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Change", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			row.change(sui.ecs)
			sui.UpdateUI()
		}),
	)
	container.AddChild(changeButton)

	row.label = widget.NewLabel(
		widget.LabelOpts.Text(row.value(systems.GetOrCreateSettings(sui.ecs)), &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	container.AddChild(row.label)

	return container
}

func (sui *SettingsUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	sui.enableButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Disable", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleEnabled(sui.ecs)
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.enableButton)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Reset", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ResetViews(sui.ecs)
		}),
	)
	container.AddChild(resetButton)

	return container
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes every value label from the current settings
func (sui *SettingsUI) UpdateUI() {
	settings := systems.GetOrCreateSettings(sui.ecs)
	for _, row := range sui.rows {
		if row.label != nil {
			row.label.Label = row.value(settings)
		}
	}

	if sui.enableButton != nil {
		if textWidget := sui.enableButton.Text(); textWidget != nil {
			if systems.ViewsEnabled(sui.ecs) {
				textWidget.Label = "Disable"
			} else {
				textWidget.Label = "Enable"
			}
		}
	}
}

// Update runs the ebitenui update and refreshes the labels, which also
// picks up changes made through keyboard shortcuts.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}
