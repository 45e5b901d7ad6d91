package tui

import (
	"testing"

	"github.com/DaveSteven/schedule-tui/internal/timeline"
)

func testGeometry() Geometry {
	// 76 wide: 6 gutter + 7 columns of 10. 26 tall: 2 header + 1 lane
	// row + 22 grid rows + footer.
	return NewGeometry(76, 26, 7, 1, 0)
}

func TestGeometry(t *testing.T) {
	g := testGeometry()

	if g.ColWidth != 10 {
		t.Errorf("ColWidth = %d, want 10", g.ColWidth)
	}
	if g.GridTop() != 3 {
		t.Errorf("GridTop = %d, want 3", g.GridTop())
	}
	if g.GridRows() != 22 {
		t.Errorf("GridRows = %d, want 22", g.GridRows())
	}
	if g.MaxScroll() != 48-22 {
		t.Errorf("MaxScroll = %d, want %d", g.MaxScroll(), 48-22)
	}
}

func TestLocate(t *testing.T) {
	g := testGeometry()

	tests := []struct {
		name       string
		x, y       int
		wantZone   Zone
		wantDay    int
		wantMinute int
	}{
		{"inside gutter", 3, 10, ZoneNone, 0, 0},
		{"header row", 10, 0, ZoneHeader, 0, 0},
		{"all-day lane", 10, 2, ZoneAllDay, 0, 0},
		{"grid first row first day", 6, 3, ZoneGrid, 0, 0},
		{"grid second row", 6, 4, ZoneGrid, 0, 30},
		{"third column", 26, 3, ZoneGrid, 2, 0},
		{"right of last column clamps", 200, 3, ZoneGrid, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := g.Locate(tt.x, tt.y)
			if hit.Zone != tt.wantZone {
				t.Fatalf("Zone = %d, want %d", hit.Zone, tt.wantZone)
			}
			if hit.Zone == ZoneNone {
				return
			}
			if hit.Day != tt.wantDay {
				t.Errorf("Day = %d, want %d", hit.Day, tt.wantDay)
			}
			if hit.Zone == ZoneGrid && hit.Minute != tt.wantMinute {
				t.Errorf("Minute = %d, want %d", hit.Minute, tt.wantMinute)
			}
		})
	}
}

func TestLocateScrolled(t *testing.T) {
	g := NewGeometry(76, 26, 7, 1, 16) // scrolled to 08:00

	hit := g.Locate(6, 3)
	if hit.Minute != 8*60 {
		t.Errorf("Minute = %d, want %d", hit.Minute, 8*60)
	}
}

func TestLocateXUnits(t *testing.T) {
	g := testGeometry()

	// Middle of the second column: 5 cells into a 10-cell column is 30
	// of its 60 units, plus the 60 units of the first column.
	hit := g.Locate(gutterWidth+15, 3)
	if hit.XUnits != 90 {
		t.Errorf("XUnits = %d, want 90", hit.XUnits)
	}
}

func TestBlockRectFor(t *testing.T) {
	p := timeline.PositionedEvent{
		ID:             "a",
		StartMinute:    9 * 60,
		DurationMinute: 90,
		Overlap: &timeline.OverlapStyle{
			WidthPercent: 83.33,
			LeftPercent:  16.67,
			ZIndex:       11,
		},
	}

	rect := BlockRectFor(p, 2, 12)
	if rect.Day != 2 {
		t.Errorf("Day = %d, want 2", rect.Day)
	}
	if rect.TopRow != 18 {
		t.Errorf("TopRow = %d, want 18", rect.TopRow)
	}
	if rect.Rows != 3 {
		t.Errorf("Rows = %d, want 3", rect.Rows)
	}
	if rect.LeftCell != 2 {
		t.Errorf("LeftCell = %d, want 2", rect.LeftCell)
	}
	if rect.Cells != 10 {
		t.Errorf("Cells = %d, want 10", rect.Cells)
	}
	if rect.ZIndex != 11 {
		t.Errorf("ZIndex = %d, want 11", rect.ZIndex)
	}
}

func TestBlockRectShortEvent(t *testing.T) {
	p := timeline.PositionedEvent{ID: "a", StartMinute: 600, DurationMinute: 15}

	rect := BlockRectFor(p, 0, 10)
	if rect.Rows != 1 {
		t.Errorf("Rows = %d, want 1 for a 15 minute event", rect.Rows)
	}
}

func TestHitBlock(t *testing.T) {
	g := testGeometry()
	rects := []BlockRect{
		{ID: "tall", Day: 1, TopRow: 2, Rows: 4, LeftCell: 0, Cells: 10, ZIndex: 10},
		{ID: "above", Day: 1, TopRow: 3, Rows: 1, LeftCell: 2, Cells: 8, ZIndex: 11},
	}

	tests := []struct {
		name     string
		x, y     int
		wantID   string
		wantEdge int
		wantOK   bool
	}{
		{"empty cell", gutterWidth, 3, "", 0, false},
		{"wrong column", gutterWidth, 5, "", 0, false},
		{"body of tall", gutterWidth + 10, 7, "tall", 0, true},
		{"top edge of tall", gutterWidth + 10, 5, "tall", -1, true},
		{"bottom edge of tall", gutterWidth + 10, 8, "tall", 1, true},
		{"higher z wins", gutterWidth + 15, 6, "above", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, edge, ok := HitBlock(rects, g, tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if rect.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", rect.ID, tt.wantID)
			}
			if edge != tt.wantEdge {
				t.Errorf("edge = %d, want %d", edge, tt.wantEdge)
			}
		})
	}
}

func TestHitBlockSingleRowHasNoEdges(t *testing.T) {
	g := testGeometry()
	rects := []BlockRect{
		{ID: "short", Day: 0, TopRow: 0, Rows: 1, LeftCell: 0, Cells: 10, ZIndex: 10},
	}

	_, edge, ok := HitBlock(rects, g, gutterWidth, 3)
	if !ok {
		t.Fatal("expected a hit")
	}
	if edge != 0 {
		t.Errorf("edge = %d, want 0 for a one row block", edge)
	}
}
