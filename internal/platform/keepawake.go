package platform

import (
	"errors"
	"fmt"
	"sync"
)

// ErrKeepAwakeUnsupported indicates display sleep cannot be suppressed on
// this system.
var ErrKeepAwakeUnsupported = errors.New("keep awake unsupported")

// Inhibitor stops the display from sleeping while held.
type Inhibitor interface {
	Inhibit(reason string) error
	Release() error
}

// NewInhibitor returns a platform-specific inhibitor.
func NewInhibitor(appName string) Inhibitor {
	return newInhibitor(appName)
}

// KeepAwake toggles an Inhibitor from the keep-awake preference. Repeated
// calls with the same value do nothing.
type KeepAwake struct {
	mu        sync.Mutex
	inhibitor Inhibitor
	reason    string
	active    bool
}

// NewKeepAwake wraps inhibitor.
func NewKeepAwake(inhibitor Inhibitor, reason string) *KeepAwake {
	return &KeepAwake{inhibitor: inhibitor, reason: reason}
}

// Set holds or releases the inhibitor.
func (keep *KeepAwake) Set(enabled bool) error {
	keep.mu.Lock()
	defer keep.mu.Unlock()

	if enabled == keep.active {
		return nil
	}
	if enabled {
		if err := keep.inhibitor.Inhibit(keep.reason); err != nil {
			return fmt.Errorf("keep display awake: %w", err)
		}
		keep.active = true
		return nil
	}
	if err := keep.inhibitor.Release(); err != nil {
		return fmt.Errorf("release display: %w", err)
	}
	keep.active = false
	return nil
}

// Active reports whether the display is currently held awake.
func (keep *KeepAwake) Active() bool {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	return keep.active
}

// Close releases the inhibitor if held.
func (keep *KeepAwake) Close() error {
	return keep.Set(false)
}
