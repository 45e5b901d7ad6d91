// Package timeline implements the event layout and drag interaction
// engine: minute/unit conversion, day projection, overlap resolution,
// all-day lane packing, and the drag/resize state machine.
package timeline

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the extent of a single day column.
	MinutesPerDay = 1440

	// MinDuration is the smallest block size the engine produces.
	MinDuration = 15

	// SnapInterval is the snapping granularity in minutes.
	SnapInterval = 15

	// hourSnapBias is the distance (in minutes, doubled to stay in
	// integer arithmetic) within which a value snaps to the hour
	// boundary instead of the nearest quarter. Represents 7.5 minutes.
	hourSnapBias2 = 15
)

// Scale maps minutes to vertical render units. The default scale is
// 1:1 so a day column is 1440 units tall; the conversion functions are
// kept as named operations so the factor stays a single substitutable
// constant.
const unitsPerMinute = 1

// MinutesToUnits converts a minute offset to render units.
func MinutesToUnits(m int) int {
	return m * unitsPerMinute
}

// UnitsToMinutes converts render units back to minutes.
func UnitsToMinutes(u int) int {
	return u / unitsPerMinute
}

// SnapToQuarter clamps m to [0, 1440] and snaps it to the quarter-hour
// grid, with a bias toward whole hours: values within 7.5 minutes past
// an hour boundary snap down to the hour, everything else rounds to
// the nearest 15.
func SnapToQuarter(m int) int {
	if m < 0 {
		m = 0
	}
	if m > MinutesPerDay {
		m = MinutesPerDay
	}
	hour := m / 60 * 60
	if (m-hour)*2 <= hourSnapBias2 {
		return hour
	}
	return (m*2 + SnapInterval) / (2 * SnapInterval) * SnapInterval
}

// FormatTime renders a minute offset as zero-padded "HH:mm".
func FormatTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Current-time indicator bounds: the marker is only drawn during
// waking hours.
const (
	indicatorStartMinute = 6 * 60
	indicatorEndMinute   = 22 * 60
)

// CurrentTimePosition returns the render unit offset for the current
// time marker and whether it should be shown at all.
func CurrentTimePosition(now time.Time) (int, bool) {
	m := now.Hour()*60 + now.Minute()
	if m < indicatorStartMinute || m > indicatorEndMinute {
		return 0, false
	}
	return MinutesToUnits(m), true
}
