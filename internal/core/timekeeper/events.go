package timekeeper

import (
	"time"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick         EventType = "tick"
	EventConfigChange EventType = "config_change"
)

// Event carries one published reading to observers.
type Event struct {
	Type     EventType
	Snapshot daytime.Snapshot
	Config   model.ClockConfig
	At       time.Time
}
