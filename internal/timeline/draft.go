package timeline

import (
	"time"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

// DraftDuration is the initial length of a block created by clicking
// empty canvas.
const DraftDuration = 30

// DraftBlock is the single transient, uncommitted block. At most one
// exists at a time.
type DraftBlock struct {
	StartMinute    int
	DurationMinute int
	Date           time.Time
}

// StartTime returns the draft's absolute start timestamp.
func (d DraftBlock) StartTime() time.Time {
	return dateutil.AtMinutes(d.Date, d.StartMinute)
}

// EndTime returns the draft's absolute end timestamp.
func (d DraftBlock) EndTime() time.Time {
	return dateutil.AtMinutes(d.Date, d.StartMinute+d.DurationMinute)
}

// ClickAction describes what a canvas or event click resolved to.
type ClickAction int

const (
	ActionNone ClickAction = iota
	ActionDraftCreated
	ActionDraftCleared
	ActionEventSelected
	ActionSelectionCleared
)

// ClickResult reports the outcome of a click. Start and End carry the
// draft's absolute timestamps when a draft was created.
type ClickResult struct {
	Action  ClickAction
	Draft   *DraftBlock
	EventID string
	Start   time.Time
	End     time.Time
}

// DraftManager owns the draft block and the current event selection.
// Both are mutually exclusive: selecting an event clears the draft,
// and an active selection suppresses draft creation.
type DraftManager struct {
	draft    *DraftBlock
	selected string
}

// NewDraftManager returns a manager with no draft and no selection.
func NewDraftManager() *DraftManager {
	return &DraftManager{}
}

// HandleCanvasClick processes a click on empty canvas at the given
// unit offset within date's column. The first click creates a draft at
// the snapped minute; a click while a draft exists clears it; a click
// while an event is selected only clears the selection.
func (m *DraftManager) HandleCanvasClick(date time.Time, clickUnits int) ClickResult {
	if m.draft != nil {
		m.draft = nil
		return ClickResult{Action: ActionDraftCleared}
	}
	if m.selected != "" {
		m.selected = ""
		return ClickResult{Action: ActionSelectionCleared}
	}

	start := SnapToQuarter(UnitsToMinutes(clickUnits))
	if start+DraftDuration > MinutesPerDay {
		start = MinutesPerDay - DraftDuration
	}
	m.draft = &DraftBlock{
		StartMinute:    start,
		DurationMinute: DraftDuration,
		Date:           dateutil.TruncateToDay(date),
	}
	return ClickResult{
		Action: ActionDraftCreated,
		Draft:  m.draft,
		Start:  m.draft.StartTime(),
		End:    m.draft.EndTime(),
	}
}

// HandleEventClick selects an existing event, clearing any draft.
func (m *DraftManager) HandleEventClick(id string) ClickResult {
	m.draft = nil
	m.selected = id
	return ClickResult{Action: ActionEventSelected, EventID: id}
}

// Draft returns the current draft block, if any.
func (m *DraftManager) Draft() (DraftBlock, bool) {
	if m.draft == nil {
		return DraftBlock{}, false
	}
	return *m.draft, true
}

// SetDraft replaces the draft block; used when a drag session moves it.
func (m *DraftManager) SetDraft(d DraftBlock) {
	m.draft = &d
}

// ClearDraft discards the draft, after a creation commit or a view
// change.
func (m *DraftManager) ClearDraft() {
	m.draft = nil
}

// Selected returns the currently selected event ID, if any.
func (m *DraftManager) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// Deselect clears the event selection.
func (m *DraftManager) Deselect() {
	m.selected = ""
}

// Reset clears both draft and selection, used on view toggles.
func (m *DraftManager) Reset() {
	m.draft = nil
	m.selected = ""
}
