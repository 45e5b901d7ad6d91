package timeline

import (
	"sort"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/event"
)

// CollapsedLaneLimit is how many chips a day's all-day lane shows
// before collapsing the rest behind a "more" count.
const CollapsedLaneLimit = 2

// DefaultLaneRowHeight is the render height of one all-day row.
const DefaultLaneRowHeight = 1

// AllDayBlock is an all-day or multi-day event placed into the lane.
// Date is the first visible day within the week; multi-day bars render
// only in that column and span SpanDays columns to the right.
type AllDayBlock struct {
	ID         string
	Title      string
	Color      string
	Date       time.Time
	SpanDays   int
	IsMultiDay bool
	RowIndex   int

	start time.Time
}

type laneDay struct {
	date     time.Time
	multiDay []AllDayBlock // blocks whose span covers this date
	single   []AllDayBlock
}

// AllDayLane holds one week's packed all-day events.
type AllDayLane struct {
	expanded bool
	days     []laneDay
}

// PackAllDay packs the all-day events among events into the week's
// lane. Multi-day spans are clipped to the window range; expanded
// disables the per-day visibility cutoff.
func PackAllDay(events []*event.Event, windows []DayWindow, expanded bool) *AllDayLane {
	lane := &AllDayLane{expanded: expanded, days: make([]laneDay, len(windows))}
	if len(windows) == 0 {
		return lane
	}
	for i, w := range windows {
		lane.days[i].date = w.Date
	}
	weekStart := windows[0].Date
	last := len(windows) - 1

	rowByDay := make([]int, len(windows))

	for _, e := range events {
		if e.Start.IsZero() || !IsAllDay(e) {
			continue
		}
		displayStart := dateutil.DaysBetween(weekStart, e.Start)
		displayEnd := dateutil.DaysBetween(weekStart, e.EffectiveEnd())
		if displayEnd < 0 || displayStart > last {
			continue
		}
		if displayStart < 0 {
			displayStart = 0
		}
		if displayEnd > last {
			displayEnd = last
		}

		b := AllDayBlock{
			ID:         e.ID,
			Title:      e.Title,
			Color:      e.EffectiveColor(),
			Date:       windows[displayStart].Date,
			SpanDays:   displayEnd - displayStart + 1,
			IsMultiDay: displayEnd > displayStart,
			start:      e.Start,
		}

		if b.IsMultiDay {
			b.RowIndex = rowByDay[displayStart]
			rowByDay[displayStart]++
			for d := displayStart; d <= displayEnd; d++ {
				lane.days[d].multiDay = append(lane.days[d].multiDay, b)
			}
		} else {
			lane.days[displayStart].single = append(lane.days[displayStart].single, b)
		}
	}

	for i := range lane.days {
		sortByStart(lane.days[i].multiDay)
		sortByStart(lane.days[i].single)
	}
	return lane
}

func sortByStart(blocks []AllDayBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].start.Before(blocks[j].start)
	})
}

func (l *AllDayLane) dayFor(date time.Time) *laneDay {
	for i := range l.days {
		if dateutil.SameDay(l.days[i].date, date) {
			return &l.days[i]
		}
	}
	return nil
}

// ForDate returns the blocks visible on date after the collapse cutoff.
// Multi-day bars take priority over single-day chips for the limited
// slots.
func (l *AllDayLane) ForDate(date time.Time) []AllDayBlock {
	d := l.dayFor(date)
	if d == nil {
		return nil
	}
	if l.expanded {
		return append(append([]AllDayBlock(nil), d.multiDay...), d.single...)
	}
	if len(d.multiDay) >= CollapsedLaneLimit {
		return append([]AllDayBlock(nil), d.multiDay[:CollapsedLaneLimit]...)
	}
	out := append([]AllDayBlock(nil), d.multiDay...)
	for _, b := range d.single {
		if len(out) >= CollapsedLaneLimit {
			break
		}
		out = append(out, b)
	}
	return out
}

// StartingOn returns the visible blocks that render in date's column:
// single-day chips plus multi-day bars whose first visible day is date.
func (l *AllDayLane) StartingOn(date time.Time) []AllDayBlock {
	var out []AllDayBlock
	for _, b := range l.ForDate(date) {
		if !b.IsMultiDay || dateutil.SameDay(b.Date, date) {
			out = append(out, b)
		}
	}
	return out
}

// MoreCount returns how many of date's blocks are hidden by the
// collapse cutoff. Zero when expanded or when everything fits.
func (l *AllDayLane) MoreCount(date time.Time) int {
	if l.expanded {
		return 0
	}
	d := l.dayFor(date)
	if d == nil {
		return 0
	}
	total := len(d.multiDay) + len(d.single)
	if total <= CollapsedLaneLimit {
		return 0
	}
	return total - CollapsedLaneLimit
}

// SingleDayLaneOffset returns the vertical offset for date's
// single-day chips, pushing them below the multi-day bars stacked
// above.
func (l *AllDayLane) SingleDayLaneOffset(date time.Time, rowHeight int) int {
	d := l.dayFor(date)
	if d == nil {
		return 0
	}
	n := len(d.multiDay)
	if !l.expanded && n > CollapsedLaneLimit {
		n = CollapsedLaneLimit
	}
	return n * rowHeight
}

// HasHidden reports whether any day in the week collapses blocks.
func (l *AllDayLane) HasHidden() bool {
	for i := range l.days {
		if l.MoreCount(l.days[i].date) > 0 {
			return true
		}
	}
	return false
}

// Expanded reports the lane's expansion state.
func (l *AllDayLane) Expanded() bool {
	return l.expanded
}
