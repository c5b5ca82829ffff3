package preferences

import (
	"minuteclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	countdown *widget.Check
	color     *widget.Select
	keepAwake *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("MinuteClock Settings")

	countdown := widget.NewCheck("Count down to midnight", nil)
	color := widget.NewSelect(colorNames(), nil)
	keepAwake := widget.NewCheck("Keep display awake", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		countdown,
		container.NewHBox(widget.NewLabel("Text colour"), color),
		widget.NewLabelWithStyle("Power", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		keepAwake,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 240))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		countdown: countdown,
		color:     color,
		keepAwake: keepAwake,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values, e.g. after the settings file changed
// on disk.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.countdown.SetChecked(settings.Countdown)
	prefs.color.SetSelected(settings.ClockConfig().Color.String())
	prefs.keepAwake.SetChecked(settings.KeepAwake)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Countdown = prefs.countdown.Checked
	if choice, ok := model.ParseColorChoice(prefs.color.Selected); ok {
		settings.ColorChoice = choice
	}
	settings.KeepAwake = prefs.keepAwake.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func colorNames() []string {
	names := make([]string, 0, len(model.ColorChoices))
	for _, choice := range model.ColorChoices {
		names = append(names, choice.String())
	}
	return names
}
