package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/event"
	"github.com/DaveSteven/schedule-tui/internal/timeline"
	"github.com/DaveSteven/schedule-tui/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		if m.mode == ModeModal {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case commands.EventsLoadedMsg:
		m.events = msg.Events
		m.loading = false
		m.relayout()
		return m, nil

	case commands.TickMsg:
		// Keep the current-time marker moving.
		return m, commands.Tick()

	case commands.DragActivateMsg:
		if m.drag.ActivateIfPending(msg.Gen, m.now()) {
			LogDrag(m.drag, "delayed activation")
		}
		return m, nil

	case commands.EventSavedMsg:
		return m.reload()

	case commands.EventDeletedMsg:
		m.drafts.Deselect()
		return m.reload()

	case commands.ImportedMsg:
		m.setStatus(fmt.Sprintf("Imported %d events from %s", msg.Count, msg.Path))
		model, cmd := m.reload()
		return model, tea.Batch(cmd, commands.ClearStatusAfter(3*time.Second))

	case commands.CalendarChangedMsg:
		// Re-import the changed file, then keep listening.
		return m, tea.Batch(
			commands.ImportICS(m.parser, m.repo, msg.Path),
			commands.WaitForCalendarChange(m.watchCh),
		)

	case commands.CopiedMsg:
		m.setStatus("Copied to clipboard")
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.StatusMsg:
		m.setStatus(msg.Msg)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("update", msg.Err)
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err))
		return m, commands.ClearStatusAfter(5 * time.Second)
	}

	return m, nil
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now().Add(3 * time.Second)
}

func (m Model) reload() (Model, tea.Cmd) {
	m.loading = true
	start, end := m.loadedRange()
	return m, commands.LoadRange(m.repo, start, end)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.ToggleView):
		if m.view == ViewWeek {
			m.view = ViewDay
		} else {
			m.view = ViewWeek
		}
		// A view toggle destroys the draft and selection.
		m.drafts.Reset()
		m.drag.Cancel()
		m.relayout()
		return m.reload()

	case key.Matches(msg, keys.Today):
		m.anchor = dateutil.TruncateToDay(time.Now())
		m.relayout()
		return m.reload()

	case key.Matches(msg, keys.Prev):
		m.anchor = m.anchor.AddDate(0, 0, -m.stepDays())
		m.relayout()
		return m.reload()

	case key.Matches(msg, keys.Next):
		m.anchor = m.anchor.AddDate(0, 0, m.stepDays())
		m.relayout()
		return m.reload()

	case key.Matches(msg, keys.ScrollUp):
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
		return m, nil

	case key.Matches(msg, keys.ScrollDown):
		if m.scrollOffset < m.geometry().MaxScroll() {
			m.scrollOffset++
		}
		return m, nil

	case key.Matches(msg, keys.ExpandLane):
		m.laneExpanded = !m.laneExpanded
		m.relayout()
		return m, nil

	case key.Matches(msg, keys.NewEvent):
		start := dateutil.NextHalfHour(m.now())
		if !dateutil.SameDay(start, m.anchor) {
			start = dateutil.AtMinutes(m.anchor, start.Hour()*60+start.Minute())
		}
		m.openForm(start, start.Add(time.Hour))
		return m, nil

	case key.Matches(msg, keys.Delete):
		if id, ok := m.drafts.Selected(); ok {
			m.mode = ModeModal
			m.modalType = ModalConfirmDelete
			m.confirmID = id
		}
		return m, nil

	case key.Matches(msg, keys.Copy):
		if e := m.selectedEvent(); e != nil {
			text := fmt.Sprintf("%s %s %s", e.Title, e.Start.Format("2006-01-02"), e.TimeRange())
			return m, commands.CopyToClipboard(text)
		}
		return m, nil

	case key.Matches(msg, keys.Import):
		var cmds []tea.Cmd
		for _, path := range m.config.Calendar.ICSFiles {
			cmds = append(cmds, commands.ImportICS(m.parser, m.repo, path))
		}
		if len(cmds) == 0 {
			m.setStatus("No ics_files configured")
			return m, commands.ClearStatusAfter(3 * time.Second)
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, keys.Escape):
		m.drafts.Reset()
		m.drag.Cancel()
		m.relayout()
		return m, nil

	case key.Matches(msg, keys.Confirm):
		if d, ok := m.drafts.Draft(); ok {
			m.openForm(d.StartTime(), d.EndTime())
			return m, nil
		}
		if id, ok := m.drafts.Selected(); ok {
			m.mode = ModeModal
			m.modalType = ModalEventDetail
			m.detailID = id
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) stepDays() int {
	if m.view == ViewDay {
		return 1
	}
	return 7
}

func (m *Model) openForm(start, end time.Time) {
	m.mode = ModeModal
	m.modalType = ModalEventForm
	m.formStart = start
	m.formEnd = end
	m.formTitle.SetValue("")
	m.formTitle.Focus()
}

func (m *Model) selectedEvent() *event.Event {
	id, ok := m.drafts.Selected()
	if !ok {
		return nil
	}
	return m.eventByID(id)
}

func (m *Model) eventByID(id string) *event.Event {
	for _, e := range m.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEventForm:
		switch {
		case key.Matches(msg, keys.Escape):
			m.closeModal()
			m.drafts.ClearDraft()
			m.relayout()
			return m, nil
		case key.Matches(msg, keys.Confirm):
			title := strings.TrimSpace(m.formTitle.Value())
			if title == "" {
				m.setStatus("Title cannot be empty")
				return m, commands.ClearStatusAfter(3 * time.Second)
			}
			e, err := event.New(title, m.formStart, m.formEnd, false)
			if err != nil {
				m.setStatus(fmt.Sprintf("Error: %v", err))
				return m, commands.ClearStatusAfter(3 * time.Second)
			}
			e.Color = m.config.UI.DefaultColor
			m.closeModal()
			m.drafts.ClearDraft()
			m.relayout()
			return m, commands.SaveEvent(m.repo, e)
		default:
			var cmd tea.Cmd
			m.formTitle, cmd = m.formTitle.Update(msg)
			return m, cmd
		}

	case ModalEventDetail:
		switch {
		case key.Matches(msg, keys.Delete):
			m.modalType = ModalConfirmDelete
			m.confirmID = m.detailID
			return m, nil
		default:
			m.closeModal()
			return m, nil
		}

	case ModalConfirmDelete:
		switch {
		case key.Matches(msg, keys.Confirm):
			id := m.confirmID
			m.closeModal()
			return m, commands.DeleteEvent(m.repo, id)
		default:
			m.closeModal()
			return m, nil
		}
	}

	m.closeModal()
	return m, nil
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.formTitle.Blur()
	m.detailID = ""
	m.confirmID = ""
}

// blockFor builds the drag working copy for a hit block.
func (m *Model) blockFor(rect BlockRect) (timeline.DragBlock, bool) {
	if rect.IsDraft {
		d, ok := m.drafts.Draft()
		if !ok {
			return timeline.DragBlock{}, false
		}
		return timeline.DragBlock{
			ID:             draftID,
			StartMinute:    d.StartMinute,
			DurationMinute: d.DurationMinute,
			Date:           d.Date,
			IsDraft:        true,
		}, true
	}
	for _, p := range m.positioned[rect.Day] {
		if p.ID == rect.ID {
			return timeline.DragBlock{
				ID:             p.ID,
				StartMinute:    p.StartMinute,
				DurationMinute: p.DurationMinute,
				Date:           p.Date,
			}, true
		}
	}
	return timeline.DragBlock{}, false
}
