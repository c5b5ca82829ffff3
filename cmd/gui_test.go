package main

import (
	"path/filepath"
	"testing"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/timekeeper"
	"minuteclock/internal/platform"
	"minuteclock/internal/storage"
	"minuteclock/internal/ui/preferences"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type unsupportedInhibitor struct {
	inhibits int
}

func (inhibitor *unsupportedInhibitor) Inhibit(string) error {
	inhibitor.inhibits++
	return platform.ErrKeepAwakeUnsupported
}

func (inhibitor *unsupportedInhibitor) Release() error {
	return nil
}

type fakeTray struct {
	countdown bool
	keepAwake bool
}

func (tray *fakeTray) SetCountdown(countdown bool) { tray.countdown = countdown }
func (tray *fakeTray) SetKeepAwake(keepAwake bool) { tray.keepAwake = keepAwake }

type fakePrefs struct {
	settings preferences.Settings
}

func (prefs *fakePrefs) UpdateSettings(settings preferences.Settings) { prefs.settings = settings }

func newTestController(t *testing.T, inhibitor platform.Inhibitor) (*controller, *fakeTray, *fakePrefs) {
	t.Helper()
	settings := preferences.DefaultSettings()
	tray := &fakeTray{}
	prefs := &fakePrefs{}
	control := &controller{
		settings: settings,
		keeper: timekeeper.New(settings.ClockConfig(), timekeeper.Config{
			Formatter: daytime.NewFormatter(language.English),
			Logger:    hclog.NewNullLogger(),
		}),
		keepAwake: platform.NewKeepAwake(inhibitor, "test"),
		store:     storage.NewStoreAt(filepath.Join(t.TempDir(), "settings.yaml"), hclog.NewNullLogger()),
		tray:      tray,
		prefs:     prefs,
		logger:    hclog.NewNullLogger(),
	}
	return control, tray, prefs
}

func TestToggleKeepAwakeFollowsPreferenceWhenUnsupported(t *testing.T) {
	inhibitor := &unsupportedInhibitor{}
	control, tray, prefs := newTestController(t, inhibitor)

	control.toggleKeepAwake()
	assert.Equal(t, 1, inhibitor.inhibits)
	assert.False(t, control.keepAwake.Active())
	assert.True(t, control.settings.KeepAwake)
	assert.True(t, tray.keepAwake)
	assert.True(t, prefs.settings.KeepAwake)

	stored, err := control.store.Load()
	require.NoError(t, err)
	assert.True(t, stored.KeepAwake)

	control.toggleKeepAwake()
	assert.False(t, control.settings.KeepAwake)
	assert.False(t, tray.keepAwake)

	stored, err = control.store.Load()
	require.NoError(t, err)
	assert.False(t, stored.KeepAwake)
}

func TestToggleCountdown(t *testing.T) {
	control, tray, prefs := newTestController(t, &unsupportedInhibitor{})

	control.toggleCountdown()
	assert.True(t, control.settings.Countdown)
	assert.True(t, tray.countdown)
	assert.True(t, prefs.settings.Countdown)
	assert.True(t, control.keeper.Config().Countdown)

	control.toggleCountdown()
	assert.False(t, control.keeper.Config().Countdown)
}

func TestReloadDoesNotSave(t *testing.T) {
	control, tray, prefs := newTestController(t, &unsupportedInhibitor{})

	updated := control.settings
	updated.Countdown = true
	control.reload(updated)

	assert.True(t, tray.countdown)
	assert.True(t, prefs.settings.Countdown)
	assert.NoFileExists(t, control.store.Path())
}
