package preferences

import (
	"minuteclock/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Countdown   bool
	ColorChoice model.ColorChoice
	KeepAwake   bool
}

// DefaultSettings returns default settings for MinuteClock.
func DefaultSettings() Settings {
	return Settings{
		Countdown:   false,
		ColorChoice: model.ColorDefault,
		KeepAwake:   false,
	}
}

// ClockConfig converts settings to the TimeKeeper configuration.
func (settings Settings) ClockConfig() model.ClockConfig {
	color := settings.ColorChoice
	if !color.Valid() {
		color = model.ColorDefault
	}
	return model.ClockConfig{
		Countdown: settings.Countdown,
		Color:     color,
		KeepAwake: settings.KeepAwake,
	}
}
