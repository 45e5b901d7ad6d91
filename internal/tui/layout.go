package tui

import (
	"math"

	"github.com/DaveSteven/schedule-tui/internal/timeline"
)

// Grid geometry constants. One terminal row covers half an hour, so a
// full day is 48 rows tall and the snap grid is finer than the cell
// grid on purpose: drags land on quarter hours even though the render
// rounds to rows.
const (
	minutesPerRow = 30
	gutterWidth   = 6 // "09:00 "
	headerRows    = 2 // title bar + day labels

	// columnUnits is the horizontal span of one day column in drag
	// units; the date-axis threshold is measured against it.
	columnUnits = 60
)

// Geometry captures the current frame layout so mouse positions can be
// mapped back to days and minutes.
type Geometry struct {
	Width        int
	Height       int
	Days         int // 1 for day view, 7 for week view
	ColWidth     int // cells per day column
	LaneRows     int // all-day lane height in rows
	ScrollOffset int // first visible grid row (in half-hour rows)
}

// NewGeometry computes the layout for a terminal size.
func NewGeometry(width, height, days, laneRows, scrollOffset int) Geometry {
	colWidth := 0
	if days > 0 {
		colWidth = (width - gutterWidth) / days
	}
	if colWidth < 1 {
		colWidth = 1
	}
	return Geometry{
		Width:        width,
		Height:       height,
		Days:         days,
		ColWidth:     colWidth,
		LaneRows:     laneRows,
		ScrollOffset: scrollOffset,
	}
}

// GridTop returns the first terminal row of the timed grid.
func (g Geometry) GridTop() int {
	return headerRows + g.LaneRows
}

// GridRows returns how many half-hour rows fit on screen.
func (g Geometry) GridRows() int {
	rows := g.Height - g.GridTop() - 1 // bottom row is the footer
	if rows < 0 {
		return 0
	}
	return rows
}

// MaxScroll returns the largest useful scroll offset.
func (g Geometry) MaxScroll() int {
	max := timeline.MinutesPerDay/minutesPerRow - g.GridRows()
	if max < 0 {
		return 0
	}
	return max
}

// Zone classifies where on screen a mouse position landed.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneHeader
	ZoneAllDay
	ZoneGrid
)

// Hit is a mouse position resolved against the geometry.
type Hit struct {
	Zone   Zone
	Day    int // column index, valid for ZoneAllDay and ZoneGrid
	Minute int // minute offset within the day, valid for ZoneGrid
	XUnits int // horizontal position in drag units
}

// Locate maps terminal coordinates to a grid position.
func (g Geometry) Locate(x, y int) Hit {
	if x < gutterWidth || g.ColWidth == 0 {
		return Hit{Zone: ZoneNone}
	}
	day := (x - gutterWidth) / g.ColWidth
	if day >= g.Days {
		day = g.Days - 1
	}
	xUnits := (x - gutterWidth) * columnUnits / g.ColWidth

	switch {
	case y < headerRows:
		return Hit{Zone: ZoneHeader, Day: day, XUnits: xUnits}
	case y < g.GridTop():
		return Hit{Zone: ZoneAllDay, Day: day, XUnits: xUnits}
	default:
		row := y - g.GridTop() + g.ScrollOffset
		minute := row * minutesPerRow
		if minute >= timeline.MinutesPerDay {
			minute = timeline.MinutesPerDay - 1
		}
		return Hit{Zone: ZoneGrid, Day: day, Minute: minute, XUnits: xUnits}
	}
}

// MinuteToRow converts a minute offset to an absolute grid row.
func MinuteToRow(minute int) int {
	return minute / minutesPerRow
}

// BlockRect is a rendered event block's footprint in terminal cells,
// kept for mouse hit-testing.
type BlockRect struct {
	ID       string
	Day      int
	TopRow   int // absolute half-hour row, before scrolling
	Rows     int
	LeftCell int // offset within the column
	Cells    int
	ZIndex   int
	IsDraft  bool
}

// BlockRectFor computes the rect for a positioned event in a column.
func BlockRectFor(p timeline.PositionedEvent, day, colWidth int) BlockRect {
	rect := BlockRect{
		ID:       p.ID,
		Day:      day,
		TopRow:   MinuteToRow(p.StartMinute),
		Rows:     blockRows(p.DurationMinute),
		LeftCell: 0,
		Cells:    colWidth,
	}
	if p.Overlap != nil {
		rect.LeftCell = int(math.Round(p.Overlap.LeftPercent / 100 * float64(colWidth)))
		rect.Cells = int(math.Round(p.Overlap.WidthPercent / 100 * float64(colWidth)))
		if rect.Cells < 1 {
			rect.Cells = 1
		}
		rect.ZIndex = p.Overlap.ZIndex
	}
	return rect
}

func blockRows(durationMinute int) int {
	rows := (durationMinute + minutesPerRow - 1) / minutesPerRow
	if rows < 1 {
		rows = 1
	}
	return rows
}

// HitBlock finds the topmost block under a grid position. The second
// return reports which part was hit so resize handles work: -1 top
// edge, +1 bottom edge, 0 body.
func HitBlock(rects []BlockRect, g Geometry, x, y int) (BlockRect, int, bool) {
	hit := g.Locate(x, y)
	if hit.Zone != ZoneGrid {
		return BlockRect{}, 0, false
	}
	row := y - g.GridTop() + g.ScrollOffset
	cellInCol := (x - gutterWidth) % g.ColWidth

	var (
		best  BlockRect
		found bool
	)
	for _, r := range rects {
		if r.Day != hit.Day {
			continue
		}
		if row < r.TopRow || row >= r.TopRow+r.Rows {
			continue
		}
		if cellInCol < r.LeftCell || cellInCol >= r.LeftCell+r.Cells {
			continue
		}
		if !found || r.ZIndex >= best.ZIndex {
			best = r
			found = true
		}
	}
	if !found {
		return BlockRect{}, 0, false
	}

	edge := 0
	switch {
	case row == best.TopRow && best.Rows > 1:
		edge = -1
	case row == best.TopRow+best.Rows-1 && best.Rows > 1:
		edge = 1
	}
	return best, edge, true
}
