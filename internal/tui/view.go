package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/timeline"
)

// View renders the calendar frame.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.mode == ModeModal {
		return m.viewModal()
	}

	geom := m.geometry()
	var lines []string
	lines = append(lines, m.viewTitle())
	lines = append(lines, m.viewDayLabels(geom))
	lines = append(lines, m.viewAllDayLane(geom)...)
	lines = append(lines, m.viewGrid(geom)...)
	lines = append(lines, m.viewFooter())
	return strings.Join(lines, "\n")
}

func (m Model) viewTitle() string {
	label := "week"
	if m.view == ViewDay {
		label = "day"
	}
	title := fmt.Sprintf("Schedule  %s  [%s]", m.anchor.Format("January 2006"), label)
	if m.loading {
		title += "  loading..."
	}
	return m.styles.Title.Render(title)
}

func (m Model) viewDayLabels(geom Geometry) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, w := range m.windows {
		label := padCenter(w.Date.Format("Mon 02"), geom.ColWidth)
		if w.IsToday {
			b.WriteString(m.styles.TodayLabel.Render(label))
		} else {
			b.WriteString(m.styles.DayLabel.Render(label))
		}
	}
	return b.String()
}

// viewAllDayLane renders the all-day rows above the timed grid. Each
// column stacks its visible blocks top to bottom; a collapsed day shows
// a "+N more" badge on its last row.
func (m Model) viewAllDayLane(geom Geometry) []string {
	if geom.LaneRows == 0 {
		return nil
	}
	lines := make([]string, 0, geom.LaneRows)
	for r := 0; r < geom.LaneRows; r++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", gutterWidth))
		for _, w := range m.windows {
			b.WriteString(m.laneCell(w, r, geom.ColWidth))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m Model) laneCell(w timeline.DayWindow, row, colWidth int) string {
	blocks := m.lane.ForDate(w.Date)
	if row < len(blocks) {
		blk := blocks[row]
		if blk.IsMultiDay {
			// Continuation columns render the bar without its title.
			text := ""
			if dateutil.SameDay(blk.Date, w.Date) {
				text = blk.Title
			}
			return m.styles.AllDayBar.Render(padTrunc(text, colWidth))
		}
		return m.styles.AllDayChip.Render(padTrunc(blk.Title, colWidth))
	}
	if row == len(blocks) {
		if n := m.lane.MoreCount(w.Date); n > 0 {
			return m.styles.MoreBadge.Render(padTrunc(fmt.Sprintf("+%d more", n), colWidth))
		}
	}
	return strings.Repeat(" ", colWidth)
}

// viewGrid renders the timed half-hour rows.
func (m Model) viewGrid(geom Geometry) []string {
	rects := m.effectiveRects(geom)
	titles, colors := m.blockText()

	selectedID, _ := m.drafts.Selected()
	draggingID := ""
	if m.drag.Active() && m.drag.HasMoved() {
		draggingID = m.drag.Block().ID
	}

	nowRow := -1
	todayCol := -1
	if pos, visible := timeline.CurrentTimePosition(m.now()); visible {
		nowRow = MinuteToRow(timeline.UnitsToMinutes(pos))
		for i, w := range m.windows {
			if w.IsToday {
				todayCol = i
			}
		}
	}

	lines := make([]string, 0, geom.GridRows())
	for i := 0; i < geom.GridRows(); i++ {
		absRow := geom.ScrollOffset + i
		if absRow >= timeline.MinutesPerDay/minutesPerRow {
			lines = append(lines, "")
			continue
		}
		var b strings.Builder
		b.WriteString(m.gutterCell(absRow))
		for day := range m.windows {
			isNowRow := day == todayCol && absRow == nowRow
			b.WriteString(m.gridCell(rects, titles, colors, selectedID, draggingID, day, absRow, geom.ColWidth, isNowRow))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m Model) gutterCell(absRow int) string {
	minute := absRow * minutesPerRow
	if minute%60 == 0 {
		return m.styles.Gutter.Render(padTrunc(timeline.FormatTime(minute), gutterWidth))
	}
	return strings.Repeat(" ", gutterWidth)
}

// gridCell renders one day column at one half-hour row, drawing the
// topmost block run by run.
func (m Model) gridCell(rects []BlockRect, titles, colors map[string]string, selectedID, draggingID string, day, absRow, colWidth int, isNowRow bool) string {
	var b strings.Builder
	cell := 0
	for cell < colWidth {
		rect, ok := topRectAt(rects, day, absRow, cell)
		if !ok {
			// Run of empty cells up to the next block edge.
			end := colWidth
			for c := cell + 1; c < colWidth; c++ {
				if _, hit := topRectAt(rects, day, absRow, c); hit {
					end = c
					break
				}
			}
			fill := strings.Repeat(" ", end-cell)
			if isNowRow {
				b.WriteString(m.styles.CurrentTime.Render(strings.Repeat("─", end-cell)))
			} else {
				b.WriteString(m.styles.GridLine.Render(fill))
			}
			cell = end
			continue
		}

		// Run of cells covered by this block.
		end := cell
		for end < colWidth {
			r, hit := topRectAt(rects, day, absRow, end)
			if !hit || r.ID != rect.ID {
				break
			}
			end++
		}

		text := ""
		if absRow == rect.TopRow {
			text = titles[rect.ID]
		}
		seg := padTrunc(text, end-cell)
		if rect.IsDraft {
			b.WriteString(m.styles.DraftBlock.Render(seg))
		} else {
			style := m.styles.EventBlock(colors[rect.ID], rect.ID == selectedID, rect.ID == draggingID)
			b.WriteString(style.Render(seg))
		}
		cell = end
	}
	return b.String()
}

func topRectAt(rects []BlockRect, day, absRow, cell int) (BlockRect, bool) {
	var (
		best  BlockRect
		found bool
	)
	for _, r := range rects {
		if r.Day != day || absRow < r.TopRow || absRow >= r.TopRow+r.Rows {
			continue
		}
		if cell < r.LeftCell || cell >= r.LeftCell+r.Cells {
			continue
		}
		if !found || r.ZIndex >= best.ZIndex {
			best = r
			found = true
		}
	}
	return best, found
}

// effectiveRects substitutes the live drag position for the dragged
// block so it follows the pointer between relayouts.
func (m Model) effectiveRects(geom Geometry) []BlockRect {
	if !m.drag.Active() || !m.drag.HasMoved() {
		return m.rects
	}
	blk := m.drag.Block()
	date := blk.Date
	if d, ok := m.drag.DisplayDate(); ok {
		date = d
	}
	day, ok := m.dayIndexOf(date)
	if !ok {
		return m.rects
	}
	out := make([]BlockRect, len(m.rects))
	for i, r := range m.rects {
		if r.ID == blk.ID {
			r.Day = day
			r.TopRow = MinuteToRow(blk.StartMinute)
			r.Rows = blockRows(blk.DurationMinute)
			r.LeftCell = 0
			r.Cells = geom.ColWidth
			r.ZIndex = m.drag.ZIndexFor(r.ID, r.ZIndex)
		}
		out[i] = r
	}
	return out
}

// blockText collects render titles and colors for every visible block.
func (m Model) blockText() (titles, colors map[string]string) {
	titles = make(map[string]string)
	colors = make(map[string]string)
	for _, blocks := range m.positioned {
		for _, p := range blocks {
			titles[p.ID] = fmt.Sprintf("%s %s", timeline.FormatTime(p.StartMinute), p.Title)
			colors[p.ID] = p.Color
		}
	}
	if d, ok := m.drafts.Draft(); ok {
		titles[draftID] = fmt.Sprintf("%s (new)", timeline.FormatTime(d.StartMinute))
	}
	return titles, colors
}

func (m Model) viewFooter() string {
	help := "q quit · v view · h/l move · n new · i import · e expand · y copy · d delete"
	left := m.styles.Footer.Render(help)
	if m.statusMsg != "" {
		status := m.styles.Status.Render("  " + m.statusMsg)
		if m.err != nil {
			status = m.styles.ErrorText.Render("  " + m.statusMsg)
		}
		return left + status
	}
	return left
}

func (m Model) viewModal() string {
	var content string
	switch m.modalType {
	case ModalEventForm:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.ModalTitle.Render("New event"),
			"",
			m.styles.ModalLabel.Render("Title"),
			m.formTitle.View(),
			"",
			m.styles.ModalLabel.Render(fmt.Sprintf("%s - %s",
				m.formStart.Format("Mon Jan 2 15:04"),
				m.formEnd.Format("15:04"))),
			"",
			m.styles.ModalLabel.Render("enter save · esc cancel"),
		)

	case ModalEventDetail:
		e := m.eventByID(m.detailID)
		if e == nil {
			content = m.styles.ModalLabel.Render("Event not found")
			break
		}
		when := fmt.Sprintf("%s  %s", e.Start.Format("Mon Jan 2"), e.TimeRange())
		if e.AllDay {
			when = e.Start.Format("Mon Jan 2") + "  all day"
		}
		rows := []string{
			m.styles.ModalTitle.Render(e.Title),
			"",
			m.styles.ModalLabel.Render(when),
		}
		if loc := e.Payload["location"]; loc != "" {
			rows = append(rows, m.styles.ModalLabel.Render("@ "+loc))
		}
		if src := e.Payload["source"]; src != "" {
			rows = append(rows, m.styles.ModalLabel.Render("from "+src))
		}
		rows = append(rows, "", m.styles.ModalLabel.Render("d delete · esc close"))
		content = lipgloss.JoinVertical(lipgloss.Left, rows...)

	case ModalConfirmDelete:
		title := m.confirmID
		if e := m.eventByID(m.confirmID); e != nil {
			title = e.Title
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.ModalTitle.Render("Delete event?"),
			"",
			m.styles.ModalLabel.Render(title),
			"",
			m.styles.ModalLabel.Render("enter delete · esc cancel"),
		)
	}

	box := m.styles.ModalBorder.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// padTrunc pads s with spaces to exactly w cells, truncating with an
// ellipsis when it is too long.
func padTrunc(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > w {
		if w == 1 {
			return "…"
		}
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}

func padCenter(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return padTrunc(s, w)
	}
	left := (w - len(r)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(r)-left)
}
