package daytime

import "fmt"

// Unit identifies one of the three clock faces.
type Unit int

const (
	UnitMinutes Unit = iota
	UnitSeconds
	UnitMetric
)

// Units lists the faces in display order.
var Units = []Unit{UnitMinutes, UnitSeconds, UnitMetric}

// Title is the short tab label.
func (unit Unit) Title() string {
	switch unit {
	case UnitSeconds:
		return "Seconds"
	case UnitMetric:
		return "Metric"
	default:
		return "Minutes"
	}
}

// Value picks the unit's string out of a display.
func (unit Unit) Value(display Display) string {
	switch unit {
	case UnitSeconds:
		return display.Seconds
	case UnitMetric:
		return display.Metric
	default:
		return display.Minutes
	}
}

// Caption describes value, e.g. "minutes until midnight". The singular is
// used only when value reads exactly "1".
func Caption(unit Unit, value string, countdown bool) string {
	direction := "since"
	if countdown {
		direction = "until"
	}

	var noun string
	switch unit {
	case UnitSeconds:
		noun = "seconds"
		if value == "1" {
			noun = "second"
		}
	case UnitMetric:
		noun = "hundred microdays"
	default:
		noun = "minutes"
		if value == "1" {
			noun = "minute"
		}
	}
	return fmt.Sprintf("%s %s midnight", noun, direction)
}

// Line is value followed by its caption, e.g. "1,439 minutes until midnight".
func Line(unit Unit, snapshot Snapshot) string {
	value := unit.Value(snapshot.Display)
	return value + " " + Caption(unit, value, snapshot.Countdown)
}
