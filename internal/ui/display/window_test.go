package display

import (
	"image/color"
	"testing"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestTextColorPalette(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 59, B: 48, A: 255}, TextColor(model.ColorRed))
	assert.NotNil(t, TextColor(model.ColorDefault))
	assert.Equal(t, TextColor(model.ColorDefault), TextColor(model.ColorChoice(99)))
}

func TestWindowUpdate(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	clock := New(app, "MinuteClock")
	clock.Update(daytime.Snapshot{
		Display:   daytime.Display{Minutes: "1", Seconds: "86,310", Metric: "9,990"},
		Countdown: true,
	}, model.ColorGreen)

	minutes := clock.faces[daytime.UnitMinutes]
	assert.Equal(t, "1", minutes.value.Text)
	assert.Equal(t, "minute until midnight", minutes.caption.Text)

	metric := clock.faces[daytime.UnitMetric]
	assert.Equal(t, "9,990", metric.value.Text)
	assert.Equal(t, "hundred microdays until midnight", metric.caption.Text)

	assert.Equal(t, TextColor(model.ColorGreen), clock.faces[daytime.UnitSeconds].value.Color)
}

func TestWindowSelect(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	clock := New(app, "MinuteClock")
	assert.Equal(t, daytime.UnitMinutes, clock.Selected())

	clock.tabs.SelectIndex(2)
	assert.Equal(t, daytime.UnitMetric, clock.Selected())

	clock.tabs.SelectIndex(1)
	assert.Equal(t, daytime.UnitSeconds, clock.Selected())
}
