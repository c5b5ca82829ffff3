package display

import (
	"image/color"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

const (
	valueTextSize   = 110
	captionTextSize = 18
)

var palette = map[model.ColorChoice]color.NRGBA{
	model.ColorRed:    {R: 255, G: 59, B: 48, A: 255},
	model.ColorYellow: {R: 255, G: 204, B: 0, A: 255},
	model.ColorGreen:  {R: 52, G: 199, B: 89, A: 255},
	model.ColorBlue:   {R: 0, G: 122, B: 255, A: 255},
}

// TextColor returns the colour for choice; the default choice follows the
// current theme foreground so it stays readable in light and dark mode.
func TextColor(choice model.ColorChoice) color.Color {
	if value, ok := palette[choice]; ok {
		return value
	}
	return theme.Color(theme.ColorNameForeground)
}

type face struct {
	value   *canvas.Text
	caption *canvas.Text
}

// Window shows one tab per unit.
type Window struct {
	window fyne.Window
	tabs   *container.AppTabs
	faces  map[daytime.Unit]*face
}

// New creates the clock window. Closing it only hides it; the tray keeps
// the app running.
func New(app fyne.App, title string) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clock := &Window{
		window: window,
		faces:  make(map[daytime.Unit]*face, len(daytime.Units)),
	}

	items := make([]*container.TabItem, 0, len(daytime.Units))
	for _, unit := range daytime.Units {
		value := canvas.NewText("", TextColor(model.ColorDefault))
		value.Alignment = fyne.TextAlignCenter
		value.TextSize = valueTextSize

		caption := canvas.NewText(daytime.Caption(unit, "", false), TextColor(model.ColorDefault))
		caption.Alignment = fyne.TextAlignCenter
		caption.TextSize = captionTextSize

		clock.faces[unit] = &face{value: value, caption: caption}
		items = append(items, container.NewTabItem(unit.Title(), container.NewCenter(container.NewVBox(value, caption))))
	}

	clock.tabs = container.NewAppTabs(items...)
	clock.tabs.SetTabLocation(container.TabLocationBottom)

	window.SetContent(clock.tabs)
	window.Resize(fyne.NewSize(640, 320))
	window.SetCloseIntercept(window.Hide)
	return clock
}

// Update renders a snapshot. Call it on the Fyne UI goroutine.
func (clock *Window) Update(snapshot daytime.Snapshot, choice model.ColorChoice) {
	textColor := TextColor(choice)
	for unit, face := range clock.faces {
		value := unit.Value(snapshot.Display)
		caption := daytime.Caption(unit, value, snapshot.Countdown)
		if face.value.Text == value && face.caption.Text == caption && face.value.Color == textColor {
			continue
		}
		face.value.Text = value
		face.value.Color = textColor
		face.caption.Text = caption
		face.caption.Color = textColor
		face.value.Refresh()
		face.caption.Refresh()
	}
}

// Selected returns the unit of the visible tab. The tray status line follows it.
func (clock *Window) Selected() daytime.Unit {
	index := clock.tabs.SelectedIndex()
	if index < 0 || index >= len(daytime.Units) {
		return daytime.UnitMinutes
	}
	return daytime.Units[index]
}

// Show displays the clock window.
func (clock *Window) Show() {
	clock.window.Show()
	clock.window.RequestFocus()
}

// Window exposes the underlying Fyne window.
func (clock *Window) Window() fyne.Window {
	return clock.window
}
