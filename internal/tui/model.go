// Package tui provides the terminal user interface for schedule-tui.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaveSteven/schedule-tui/internal/config"
	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/event"
	"github.com/DaveSteven/schedule-tui/internal/ics"
	"github.com/DaveSteven/schedule-tui/internal/timeline"
	"github.com/DaveSteven/schedule-tui/internal/tui/commands"
	"github.com/DaveSteven/schedule-tui/internal/tui/theme"
	"github.com/DaveSteven/schedule-tui/internal/watch"
)

// ViewMode selects the visible window shape.
type ViewMode int

const (
	ViewWeek ViewMode = iota
	ViewDay
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalEventForm
	ModalEventDetail
	ModalConfirmDelete
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	config *config.Config
	parser *ics.Parser

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Layout engine state
	projector timeline.Projector
	drag      *timeline.DragSession
	drafts    *timeline.DraftManager

	// View state
	view         ViewMode
	anchor       time.Time // selected date
	windows      []timeline.DayWindow
	laneExpanded bool
	loading      bool

	// Loaded events and derived layout, rebuilt on every change
	events     []*event.Event
	positioned [][]timeline.PositionedEvent
	lane       *timeline.AllDayLane
	rects      []BlockRect

	// Drag bookkeeping
	dragIsDraft  bool
	dragOrigDate time.Time
	lastGridX    int
	lastGridY    int

	// Modal state
	mode       Mode
	modalType  ModalType
	formTitle  textinput.Model
	formStart  time.Time
	formEnd    time.Time
	detailID   string
	confirmID  string

	// Calendar file watching
	watcher *watch.FileWatcher
	watchCh chan string

	// Terminal dimensions
	width        int
	height       int
	scrollOffset int

	// Messages
	statusMsg  string
	statusTime time.Time
	err        error

	now func() time.Time
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config) *Model {
	formTitle := textinput.New()
	formTitle.Placeholder = "Event title"
	formTitle.CharLimit = 256
	formTitle.Width = 40

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	view := ViewWeek
	if cfg.UI.DefaultView == "day" {
		view = ViewDay
	}

	m := &Model{
		repo:   repo,
		config: cfg,
		parser: &ics.Parser{Warn: LogWarnf},
		theme:  t,
		styles: styles,
		projector: timeline.Projector{
			Warn: LogWarnf,
		},
		drag: timeline.NewDragSession(timeline.DragConfig{
			MoveThreshold:   cfg.Drag.MoveThreshold,
			DateThreshold:   cfg.Drag.DateThreshold,
			ActivationDelay: time.Duration(cfg.Drag.ActivationDelayMS) * time.Millisecond,
		}),
		drafts:       timeline.NewDraftManager(),
		view:         view,
		anchor:       dateutil.TruncateToDay(time.Now()),
		formTitle:    formTitle,
		scrollOffset: MinuteToRow(8 * 60), // open scrolled to the morning
		now:          time.Now,
	}
	m.windows = m.visibleWindows()
	return m
}

// visibleWindows computes the day columns for the current view.
func (m *Model) visibleWindows() []timeline.DayWindow {
	if m.view == ViewDay {
		return []timeline.DayWindow{timeline.DayOf(m.anchor)}
	}
	return timeline.WeekOf(m.anchor)
}

// loadedRange is the date span the current view needs from storage.
func (m *Model) loadedRange() (time.Time, time.Time) {
	return m.windows[0].Date, m.windows[len(m.windows)-1].Date
}

// relayout reprojects events and rebuilds the overlap styles, lane
// packing, and hit-test rects. Called whenever events, the visible
// window, or the lane expansion change.
func (m *Model) relayout() {
	m.windows = m.visibleWindows()
	m.positioned = timeline.ResolveOverlapsWeek(m.projector.ProjectWeek(m.events, m.windows))
	m.lane = timeline.PackAllDay(m.events, m.windows, m.laneExpanded)

	geom := m.geometry()
	m.rects = m.rects[:0]
	for day, blocks := range m.positioned {
		for _, p := range blocks {
			m.rects = append(m.rects, BlockRectFor(p, day, geom.ColWidth))
		}
	}
	if d, ok := m.drafts.Draft(); ok {
		if idx, ok := m.dayIndexOf(d.Date); ok {
			m.rects = append(m.rects, BlockRect{
				ID:      draftID,
				Day:     idx,
				TopRow:  MinuteToRow(d.StartMinute),
				Rows:    blockRows(d.DurationMinute),
				Cells:   geom.ColWidth,
				ZIndex:  timeline.MaxZIndex - 1,
				IsDraft: true,
			})
		}
	}
}

// draftID is the sentinel block ID used for the uncommitted draft.
const draftID = "__draft__"

func (m *Model) dayIndexOf(date time.Time) (int, bool) {
	for i, w := range m.windows {
		if dateutil.SameDay(w.Date, date) {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) geometry() Geometry {
	laneRows := 0
	if m.lane != nil {
		for _, w := range m.windows {
			rows := len(m.lane.ForDate(w.Date))
			if m.lane.MoreCount(w.Date) > 0 {
				rows++ // "+N more" badge row
			}
			if rows > laneRows {
				laneRows = rows
			}
		}
	}
	return NewGeometry(m.width, m.height, len(m.windows), laneRows, m.scrollOffset)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	start, end := m.loadedRange()
	cmds := []tea.Cmd{
		commands.LoadRange(m.repo, start, end),
		commands.Tick(),
	}
	if m.watchCh != nil {
		cmds = append(cmds, commands.WaitForCalendarChange(m.watchCh))
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI.
func Run(repo event.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo event.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)

	if len(cfg.Calendar.ICSFiles) > 0 {
		ch := make(chan string, 4)
		fw, err := watch.New(func(path string) { ch <- path })
		if err == nil {
			for _, path := range cfg.Calendar.ICSFiles {
				if err := fw.Add(path); err != nil {
					LogWarnf("watching %s: %v", path, err)
				}
			}
			model.watcher = fw
			model.watchCh = ch
			defer func() { _ = fw.Close() }()
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
