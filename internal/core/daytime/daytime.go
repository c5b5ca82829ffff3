// Package daytime converts an instant into counts of minutes, seconds and
// hundred-microday units relative to local midnight.
package daytime

import (
	"math"
	"time"
)

const (
	MinutesPerDay = 1440
	SecondsPerDay = 86400
	MetricPerDay  = 10000

	secondsPerMinute = 60.0
	secondsPerMetric = 8.64
)

// DisplayCounts holds the three counts shown on the clock.
type DisplayCounts struct {
	Minutes int
	Seconds int
	Metric  int
}

// Midnight returns the start of the calendar day of now in now's location.
// Where the clocks jump forward at 00:00 the day starts at the end of the
// gap, not at the normalised 23:00 of the day before.
func Midnight(now time.Time) time.Time {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if _, _, got := midnight.Date(); got != day {
		_, midnight = midnight.ZoneBounds()
	}
	return midnight
}

// ElapsedSeconds returns the real seconds between local midnight and now.
// On a day with a daylight-saving shift the result can reach past 86399.
func ElapsedSeconds(now time.Time) float64 {
	return now.Sub(Midnight(now)).Seconds()
}

// Compute derives the counts for now. With countdown set the counts are the
// time remaining until the next midnight, which reads 1440/86400/10000 at the
// exact instant of midnight.
func Compute(now time.Time, countdown bool) DisplayCounts {
	return FromElapsed(ElapsedSeconds(now), countdown)
}

// FromElapsed derives the counts from seconds since midnight.
func FromElapsed(elapsed float64, countdown bool) DisplayCounts {
	counts := DisplayCounts{
		Minutes: int(math.Floor(elapsed / secondsPerMinute)),
		Seconds: int(math.Floor(elapsed)),
		Metric:  int(math.Floor(elapsed / secondsPerMetric)),
	}
	if countdown {
		counts.Minutes = MinutesPerDay - counts.Minutes
		counts.Seconds = SecondsPerDay - counts.Seconds
		counts.Metric = MetricPerDay - counts.Metric
	}
	return counts
}
