// Package dateutil provides date parsing and day arithmetic utilities.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// DateLayout is the canonical date format used across the application.
const DateLayout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the number of calendar days from a to b.
// Positive when b is after a, negative when before. Clock times never
// shift the result: both midnights are rebuilt in UTC before
// subtracting, so a 23- or 25-hour DST transition day still counts as
// exactly one day.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// StartOfWeek returns the Sunday at or before t, truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the Saturday at or after t, truncated to midnight.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// InRange reports whether day falls within [start, end] inclusive,
// comparing calendar days only.
func InRange(day, start, end time.Time) bool {
	day = TruncateToDay(day)
	return !day.Before(TruncateToDay(start)) && !day.After(TruncateToDay(end))
}

// AtMinutes returns day's midnight plus m minutes.
func AtMinutes(day time.Time, m int) time.Time {
	return TruncateToDay(day).Add(time.Duration(m) * time.Minute)
}

// NextHalfHour rounds t up to the next half-hour boundary, the default
// start time for newly created events.
func NextHalfHour(t time.Time) time.Time {
	day := TruncateToDay(t)
	m := t.Hour()*60 + t.Minute()
	if t.Minute() < 30 {
		return AtMinutes(day, m-t.Minute()+30)
	}
	return AtMinutes(day, m-t.Minute()+60)
}
