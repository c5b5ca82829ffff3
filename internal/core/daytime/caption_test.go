package daytime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaption(t *testing.T) {
	assert.Equal(t, "minute since midnight", Caption(UnitMinutes, "1", false))
	assert.Equal(t, "minutes since midnight", Caption(UnitMinutes, "0", false))
	assert.Equal(t, "minutes until midnight", Caption(UnitMinutes, "1,440", true))
	assert.Equal(t, "second until midnight", Caption(UnitSeconds, "1", true))
	assert.Equal(t, "seconds since midnight", Caption(UnitSeconds, "11", false))
	assert.Equal(t, "hundred microdays since midnight", Caption(UnitMetric, "1", false))
	assert.Equal(t, "hundred microdays until midnight", Caption(UnitMetric, "9,990", true))
}

func TestLine(t *testing.T) {
	snapshot := Snapshot{
		Display:   Display{Minutes: "1,439", Seconds: "86,310", Metric: "9,990"},
		Countdown: true,
	}

	assert.Equal(t, "1,439 minutes until midnight", Line(UnitMinutes, snapshot))
	assert.Equal(t, "86,310 seconds until midnight", Line(UnitSeconds, snapshot))
	assert.Equal(t, "9,990 hundred microdays until midnight", Line(UnitMetric, snapshot))
}

func TestUnitTitles(t *testing.T) {
	var titles []string
	for _, unit := range Units {
		titles = append(titles, unit.Title())
	}
	assert.Equal(t, []string{"Minutes", "Seconds", "Metric"}, titles)
}
