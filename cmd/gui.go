package main

import (
	"context"
	"errors"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/timekeeper"
	"minuteclock/internal/platform"
	"minuteclock/internal/storage"
	"minuteclock/internal/ui/display"
	"minuteclock/internal/ui/preferences"
	"minuteclock/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/hashicorp/go-hclog"
)

type trayView interface {
	SetCountdown(countdown bool)
	SetKeepAwake(keepAwake bool)
}

type settingsView interface {
	UpdateSettings(settings preferences.Settings)
}

// controller owns the live settings of the desktop clock. Its methods run on
// the Fyne goroutine only.
type controller struct {
	settings  preferences.Settings
	keeper    *timekeeper.TimeKeeper
	keepAwake *platform.KeepAwake
	store     *storage.Store
	tray      trayView
	prefs     settingsView
	logger    hclog.Logger
}

// apply pushes settings to the keeper, the display inhibitor and the tray.
// The tray shows the saved preference even when the inhibitor refused it.
func (control *controller) apply(updated preferences.Settings) {
	control.settings = updated
	control.keeper.UpdateConfig(updated.ClockConfig())
	if err := control.keepAwake.Set(updated.KeepAwake); err != nil {
		awakeLogger := control.logger.Named("keepawake")
		if errors.Is(err, platform.ErrKeepAwakeUnsupported) {
			awakeLogger.Warn("cannot keep the display awake on this system", "error", err)
		} else {
			awakeLogger.Error("keep awake", "error", err)
		}
	}
	if control.tray != nil {
		control.tray.SetCountdown(updated.Countdown)
		control.tray.SetKeepAwake(updated.KeepAwake)
	}
}

// reload applies settings read back from disk.
func (control *controller) reload(updated preferences.Settings) {
	control.apply(updated)
	if control.prefs != nil {
		control.prefs.UpdateSettings(updated)
	}
}

// save applies settings changed in the app and writes them out.
func (control *controller) save(updated preferences.Settings) {
	control.reload(updated)
	if err := control.store.Save(updated); err != nil {
		control.logger.Error("save settings", "path", control.store.Path(), "error", err)
	}
}

func (control *controller) toggleCountdown() {
	updated := control.settings
	updated.Countdown = !updated.Countdown
	control.save(updated)
}

func (control *controller) toggleKeepAwake() {
	updated := control.settings
	updated.KeepAwake = !updated.KeepAwake
	control.save(updated)
}

func runGUI(logger hclog.Logger, store *storage.Store) error {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		logger.Info("single instance", "error", err)
		return nil
	}
	defer func() {
		_ = lock.Release()
	}()

	settings := loadSettings(logger, store)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	clock := display.New(fyneApp, appName)
	keeper := timekeeper.New(settings.ClockConfig(), timekeeper.Config{
		Logger: logger.Named("timekeeper"),
	})
	control := &controller{
		settings:  settings,
		keeper:    keeper,
		keepAwake: platform.NewKeepAwake(platform.NewInhibitor(appName), "Showing the time"),
		store:     store,
		logger:    logger,
	}

	prefsWindow := preferences.New(fyneApp, settings, control.save)
	control.prefs = prefsWindow

	quit := func() {
		keeper.Stop()
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, appName, tray.Callbacks{
			OnShowClock:       clock.Show,
			OnPreferences:     prefsWindow.Show,
			OnToggleCountdown: control.toggleCountdown,
			OnToggleKeepAwake: control.toggleKeepAwake,
			OnQuit:            quit,
		})
		control.tray = trayManager
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		logger.Info("system tray unsupported on this platform")
		clock.Window().SetCloseIntercept(quit)
	}

	control.apply(settings)
	clock.Update(keeper.Latest(), settings.ClockConfig().Color)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchDone, err := store.Watch(ctx, func(updated preferences.Settings) {
		fyne.Do(func() {
			control.reload(updated)
		})
	})
	if err != nil {
		logger.Warn("settings changes will not be picked up", "error", err)
	}

	events := keeper.Subscribe(4)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			color := event.Config.Color
			fyne.Do(func() {
				clock.Update(snapshot, color)
				if trayManager != nil {
					trayManager.SetStatus(daytime.Line(clock.Selected(), snapshot))
				}
			})
		}
	}()

	keeper.Start()
	clock.Show()
	fyneApp.Run()

	keeper.Stop()
	cancel()
	if watchDone != nil {
		<-watchDone
	}
	if err := control.keepAwake.Close(); err != nil {
		logger.Named("keepawake").Warn("release display", "error", err)
	}
	return nil
}
