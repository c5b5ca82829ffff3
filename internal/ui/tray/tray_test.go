package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerState(t *testing.T) {
	manager := New(nil, "MinuteClock", Callbacks{})

	manager.SetStatus("1,439 minutes until midnight")
	manager.SetCountdown(true)
	manager.SetKeepAwake(true)

	assert.Equal(t, "1,439 minutes until midnight", manager.statusItem.Label)
	assert.True(t, manager.countdownItem.Checked)
	assert.True(t, manager.keepAwakeItem.Checked)
	assert.True(t, manager.statusItem.Disabled)
}

func TestManagerCallbacks(t *testing.T) {
	toggledCountdown := 0
	toggledKeepAwake := 0
	manager := New(nil, "MinuteClock", Callbacks{
		OnToggleCountdown: func() { toggledCountdown++ },
		OnToggleKeepAwake: func() { toggledKeepAwake++ },
	})

	manager.countdownItem.Action()
	manager.countdownItem.Action()
	manager.keepAwakeItem.Action()

	assert.Equal(t, 2, toggledCountdown)
	assert.Equal(t, 1, toggledKeepAwake)
}
