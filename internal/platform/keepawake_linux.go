package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverService   = "org.freedesktop.ScreenSaver"
	screenSaverPath      = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverInterface = "org.freedesktop.ScreenSaver"
)

// dbusInhibitor uses the freedesktop ScreenSaver API, which GNOME, KDE and
// most other session managers implement.
type dbusInhibitor struct {
	appName string
	conn    *dbus.Conn
	cookie  uint32
}

func newInhibitor(appName string) Inhibitor {
	return &dbusInhibitor{appName: appName}
}

func (inhibitor *dbusInhibitor) Inhibit(reason string) error {
	if inhibitor.conn != nil {
		return nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("%w: session bus: %v", ErrKeepAwakeUnsupported, err)
	}

	var cookie uint32
	call := conn.Object(screenSaverService, screenSaverPath).Call(screenSaverInterface+".Inhibit", 0, inhibitor.appName, reason)
	if err := call.Store(&cookie); err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: inhibit: %v", ErrKeepAwakeUnsupported, err)
	}

	inhibitor.conn = conn
	inhibitor.cookie = cookie
	return nil
}

func (inhibitor *dbusInhibitor) Release() error {
	if inhibitor.conn == nil {
		return nil
	}
	conn := inhibitor.conn
	inhibitor.conn = nil
	defer conn.Close()

	call := conn.Object(screenSaverService, screenSaverPath).Call(screenSaverInterface+".UnInhibit", 0, inhibitor.cookie)
	if call.Err != nil {
		return fmt.Errorf("uninhibit: %w", call.Err)
	}
	return nil
}
