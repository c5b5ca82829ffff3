package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowClock       func()
	OnPreferences     func()
	OnToggleCountdown func()
	OnToggleKeepAwake func()
	OnQuit            func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	title         string
	statusItem    *fyne.MenuItem
	countdownItem *fyne.MenuItem
	keepAwakeItem *fyne.MenuItem
	callbacks     Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("starting...", nil)
	manager.statusItem.Disabled = true

	manager.countdownItem = fyne.NewMenuItem("Count down to midnight", func() {
		invoke(manager.callbacks.OnToggleCountdown)
	})
	manager.keepAwakeItem = fyne.NewMenuItem("Keep display awake", func() {
		invoke(manager.callbacks.OnToggleKeepAwake)
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line, e.g. "1,439 minutes until midnight".
func (manager *Manager) SetStatus(status string) {
	if manager.statusItem.Label == status {
		return
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetCountdown updates the countdown check mark.
func (manager *Manager) SetCountdown(countdown bool) {
	manager.countdownItem.Checked = countdown
	manager.refreshMenu()
}

// SetKeepAwake updates the keep-awake check mark.
func (manager *Manager) SetKeepAwake(keepAwake bool) {
	manager.keepAwakeItem.Checked = keepAwake
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show clock", func() {
			invoke(manager.callbacks.OnShowClock)
		}),
		fyne.NewMenuItem("Preferences", func() {
			invoke(manager.callbacks.OnPreferences)
		}),
		manager.countdownItem,
		manager.keepAwakeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			invoke(manager.callbacks.OnQuit)
		}),
	))
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
