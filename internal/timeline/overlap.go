package timeline

import "sort"

// OverlapStyle is the computed horizontal slot for one of several
// blocks starting at the same minute. Widths are percentages of the
// day column.
type OverlapStyle struct {
	WidthPercent float64
	LeftPercent  float64
	ZIndex       int
}

// overlapRatio controls how much of each underlying block stays
// revealed when blocks share a start minute.
const overlapRatio = 0.2

// Z-order bases: each start-time group gets its own base, staggered so
// later groups always stack above earlier ones.
const (
	zBase = 10
	zStep = 10
)

// MaxZIndex is assigned to a block being actively dragged so it renders
// above everything else until commit.
const MaxZIndex = 9999

type groupKey struct {
	date        int64
	startMinute int
}

// ResolveOverlaps attaches an OverlapStyle to every block in place and
// returns the slice. Blocks are grouped by exact start minute (and
// date, so a week's columns can be resolved in one call); within a
// group of size N each block gets width 100/(1+0.2(N-1)) and a left
// offset of width*0.2*i, so the slots together span the full column
// exactly once. Group z-order bases ascend with start time. The
// resolver is idempotent: resolving already-resolved blocks yields the
// same styles.
func ResolveOverlaps(blocks []PositionedEvent) []PositionedEvent {
	groups := make(map[groupKey][]int)
	for i, b := range blocks {
		k := groupKey{date: b.Date.Unix(), startMinute: b.StartMinute}
		groups[k] = append(groups[k], i)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].startMinute < keys[j].startMinute
	})

	for gi, k := range keys {
		idxs := groups[k]
		n := len(idxs)
		width := 100.0
		leftStep := 0.0
		if n > 1 {
			width = 100.0 / (1.0 + overlapRatio*float64(n-1))
			leftStep = width * overlapRatio
		}
		base := zBase + zStep*gi
		for pos, i := range idxs {
			blocks[i].Overlap = &OverlapStyle{
				WidthPercent: width,
				LeftPercent:  leftStep * float64(pos),
				ZIndex:       base + pos,
			}
		}
	}
	return blocks
}

// ResolveOverlapsWeek resolves each day column independently and
// returns the same per-day slices with styles attached.
func ResolveOverlapsWeek(days [][]PositionedEvent) [][]PositionedEvent {
	for i := range days {
		days[i] = ResolveOverlaps(days[i])
	}
	return days
}
