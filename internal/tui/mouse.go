package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/timeline"
	"github.com/DaveSteven/schedule-tui/internal/tui/commands"
)

// handleMouse routes terminal mouse events into the drag session and
// the draft manager. Vertical positions are fed to the session in
// minutes, horizontal positions in column units, so the engine's
// thresholds keep their meaning regardless of terminal size.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m, nil
	}

	geom := m.geometry()
	hit := geom.Locate(msg.X, msg.Y)
	LogMouse(msg, hit)
	if hit.Zone == ZoneGrid {
		m.lastGridX, m.lastGridY = hit.XUnits, hit.Minute
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress && m.scrollOffset > 0 {
			m.scrollOffset--
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress && m.scrollOffset < geom.MaxScroll() {
			m.scrollOffset++
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(geom, hit, msg)

	case tea.MouseActionMotion:
		if m.drag.Active() && hit.Zone == ZoneGrid {
			m.drag.Move(hit.XUnits, hit.Minute, m.now())
		}
		return m, nil

	case tea.MouseActionRelease:
		if hit.Zone != ZoneGrid {
			// The pointer slipped off the grid before release; finish
			// from the last in-grid position so the commit matches
			// the preview.
			hit.XUnits, hit.Minute = m.lastGridX, m.lastGridY
		}
		return m.handleRelease(hit)
	}

	return m, nil
}

func (m Model) handlePress(geom Geometry, hit Hit, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch hit.Zone {
	case ZoneAllDay:
		if m.lane != nil && m.lane.HasHidden() {
			m.laneExpanded = !m.laneExpanded
			m.relayout()
		}
		return m, nil

	case ZoneGrid:
		if rect, edge, ok := HitBlock(m.rects, geom, msg.X, msg.Y); ok {
			return m.beginDrag(rect, edge, hit, now)
		}
		return m.canvasClick(hit, now)
	}

	return m, nil
}

func (m Model) beginDrag(rect BlockRect, edge int, hit Hit, now time.Time) (tea.Model, tea.Cmd) {
	block, ok := m.blockFor(rect)
	if !ok {
		return m, nil
	}

	mode := timeline.ModeMove
	switch edge {
	case -1:
		mode = timeline.ModeResizeTop
	case 1:
		mode = timeline.ModeResizeBottom
	}

	m.drag.Begin(block, mode, hit.XUnits, hit.Minute, now)
	if m.view == ViewWeek && mode == timeline.ModeMove {
		m.drag.EnableDateAxis(m.windows, columnUnits, rect.Day)
	}
	m.dragIsDraft = rect.IsDraft
	m.dragOrigDate = block.Date
	LogDrag(m.drag, "begin")

	if m.drag.State() == timeline.StatePendingStart {
		delay := time.Duration(m.config.Drag.ActivationDelayMS) * time.Millisecond
		return m, commands.ScheduleDragActivation(m.drag.Generation(), delay)
	}
	return m, nil
}

func (m Model) canvasClick(hit Hit, now time.Time) (tea.Model, tea.Cmd) {
	if m.drag.ShouldIgnoreClick(now) {
		return m, nil
	}
	res := m.drafts.HandleCanvasClick(m.windows[hit.Day].Date, hit.Minute)
	switch res.Action {
	case timeline.ActionDraftCreated:
		m.setStatus(fmt.Sprintf("Draft %s - %s, enter to save",
			res.Start.Format("15:04"), res.End.Format("15:04")))
		m.relayout()
		return m, commands.ClearStatusAfter(5 * time.Second)
	case timeline.ActionDraftCleared, timeline.ActionSelectionCleared:
		m.relayout()
	}
	return m, nil
}

func (m Model) handleRelease(hit Hit) (tea.Model, tea.Cmd) {
	if !m.drag.Active() {
		return m, nil
	}
	now := m.now()
	block := m.drag.Block()
	wasDraft := m.dragIsDraft

	commit, ok := m.drag.Release(hit.XUnits, hit.Minute, now)
	if !ok {
		// The press never became a drag: resolve it as a click on
		// the block it started on.
		if m.drag.ShouldIgnoreClick(now) {
			return m, nil
		}
		if wasDraft {
			if d, hasDraft := m.drafts.Draft(); hasDraft {
				m.openForm(d.StartTime(), d.EndTime())
			}
			return m, nil
		}
		m.drafts.HandleEventClick(block.ID)
		m.relayout()
		return m, nil
	}

	LogCommit(commit)
	if wasDraft {
		m.drafts.SetDraft(timeline.DraftBlock{
			StartMinute:    commit.StartMinute,
			DurationMinute: commit.DurationMinute,
			Date:           commit.Date,
		})
		m.relayout()
		return m, nil
	}

	newStart := dateutil.AtMinutes(commit.Date, commit.StartMinute)
	newEnd := newStart.Add(time.Duration(commit.DurationMinute) * time.Minute)
	return m, commands.CommitEventTimes(m.repo, commit.ID, newStart, newEnd)
}
