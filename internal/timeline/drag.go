package timeline

import (
	"math"
	"time"
)

// DragMode selects what a pointer-down on a block manipulates.
type DragMode int

const (
	ModeMove DragMode = iota
	ModeResizeTop
	ModeResizeBottom
)

// DragState is the session's position in the interaction lifecycle.
type DragState int

const (
	StateIdle DragState = iota
	StatePendingStart
	StateMoving
	StateResizingTop
	StateResizingBottom
)

// DragConfig tunes the interaction thresholds. Zero values fall back
// to the defaults.
type DragConfig struct {
	// MoveThreshold is the displacement in units before a pending
	// press becomes a drag.
	MoveThreshold int
	// DateThreshold is the larger horizontal displacement required
	// before week-view dragging starts following the date axis.
	DateThreshold int
	// ActivationDelay postpones drag activation on existing events so
	// a plain click doesn't start one.
	ActivationDelay time.Duration
	// ClickSuppressWindow ignores clicks arriving right after a drag
	// release.
	ClickSuppressWindow time.Duration
}

const (
	defaultMoveThreshold       = 5
	defaultDateThreshold       = 30
	defaultActivationDelay     = 300 * time.Millisecond
	defaultClickSuppressWindow = 200 * time.Millisecond
)

func (c DragConfig) withDefaults() DragConfig {
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = defaultMoveThreshold
	}
	if c.DateThreshold <= 0 {
		c.DateThreshold = defaultDateThreshold
	}
	if c.ActivationDelay <= 0 {
		c.ActivationDelay = defaultActivationDelay
	}
	if c.ClickSuppressWindow <= 0 {
		c.ClickSuppressWindow = defaultClickSuppressWindow
	}
	return c
}

// DragBlock is the working copy of the block under manipulation. The
// session mutates it live for rendering; the canonical event is only
// touched by the commit.
type DragBlock struct {
	ID             string
	StartMinute    int
	DurationMinute int
	Date           time.Time
	IsDraft        bool
}

// DragCommit carries the single authoritative update emitted when a
// drag that actually moved something is released.
type DragCommit struct {
	ID             string
	StartMinute    int
	DurationMinute int
	Date           time.Time
}

// DragSession drives one pointer interaction from press to release.
// It is single-writer: Begin while a session is active is a no-op.
// Activation timers are modelled as deadlines plus a generation
// counter, so a timer scheduled for a finished session can never fire
// into the next one.
type DragSession struct {
	cfg DragConfig

	state DragState
	mode  DragMode
	gen   uint64

	block       DragBlock
	originX     int
	originY     int
	origStart   int
	origDur     int
	origEnd     int
	hasMoved    bool
	pendingBy   time.Time
	lastDragEnd time.Time

	dateAxis    bool
	windows     []DayWindow
	columnWidth int
	originIdx   int
	displayIdx  int
}

// NewDragSession creates an idle session with the given thresholds.
func NewDragSession(cfg DragConfig) *DragSession {
	return &DragSession{cfg: cfg.withDefaults()}
}

// State returns the current lifecycle state.
func (s *DragSession) State() DragState { return s.state }

// Active reports whether a press is being tracked.
func (s *DragSession) Active() bool { return s.state != StateIdle }

// HasMoved reports whether displacement ever crossed a threshold
// during the current session.
func (s *DragSession) HasMoved() bool { return s.hasMoved }

// Block returns the live working copy for rendering.
func (s *DragSession) Block() DragBlock { return s.block }

// Generation identifies the current session for activation timers.
func (s *DragSession) Generation() uint64 { return s.gen }

// ZIndexFor returns the stacking order to render block id with: the
// dragged block is forced above everything while the session is live.
func (s *DragSession) ZIndexFor(id string, normal int) int {
	if s.Active() && s.hasMoved && s.block.ID == id {
		return MaxZIndex
	}
	return normal
}

// Begin starts tracking a press on block. Resize handles and draft
// blocks activate immediately; a move on an existing event waits out
// the activation delay so a click stays a click.
func (s *DragSession) Begin(block DragBlock, mode DragMode, x, y int, now time.Time) {
	if s.state != StateIdle {
		return
	}
	s.gen++
	s.mode = mode
	s.block = block
	s.originX = x
	s.originY = y
	s.origStart = block.StartMinute
	s.origDur = block.DurationMinute
	s.origEnd = block.StartMinute + block.DurationMinute
	s.hasMoved = false
	s.dateAxis = false

	if mode == ModeMove && !block.IsDraft {
		s.state = StatePendingStart
		s.pendingBy = now.Add(s.cfg.ActivationDelay)
		return
	}
	s.activate()
}

// EnableDateAxis turns on horizontal date following for week view.
// windows are the visible columns, columnWidth their render width, and
// originIdx the column the block started in.
func (s *DragSession) EnableDateAxis(windows []DayWindow, columnWidth, originIdx int) {
	if !s.Active() || columnWidth <= 0 || originIdx < 0 || originIdx >= len(windows) {
		return
	}
	s.dateAxis = true
	s.windows = windows
	s.columnWidth = columnWidth
	s.originIdx = originIdx
	s.displayIdx = originIdx
}

func (s *DragSession) activate() {
	switch s.mode {
	case ModeMove:
		s.state = StateMoving
	case ModeResizeTop:
		s.state = StateResizingTop
	case ModeResizeBottom:
		s.state = StateResizingBottom
	}
}

// ActivateIfPending fires a scheduled activation timer. The generation
// guard makes a timer from an already-finished session a no-op.
func (s *DragSession) ActivateIfPending(gen uint64, now time.Time) bool {
	if gen != s.gen || s.state != StatePendingStart {
		return false
	}
	if now.Before(s.pendingBy) {
		return false
	}
	s.activate()
	return true
}

// Move feeds a pointer position into the session. The working copy is
// re-snapped live; updates that would violate the duration or bounds
// invariants are dropped for that frame.
func (s *DragSession) Move(x, y int, now time.Time) {
	if s.state == StateIdle {
		return
	}
	dx := x - s.originX
	dy := y - s.originY

	if s.state == StatePendingStart {
		past := abs(dy) > s.cfg.MoveThreshold || (s.dateAxis && abs(dx) > s.cfg.DateThreshold)
		if !past && now.Before(s.pendingBy) {
			return
		}
		s.activate()
	}

	switch s.state {
	case StateMoving:
		s.moveTo(dy)
		if s.dateAxis {
			s.followDate(dx)
		}
	case StateResizingTop:
		s.resizeTop(dy)
	case StateResizingBottom:
		s.resizeBottom(dy)
	}
}

func (s *DragSession) moveTo(dy int) {
	if abs(dy) > s.cfg.MoveThreshold {
		s.hasMoved = true
	}
	top := MinutesToUnits(s.origStart) + dy
	maxTop := MinutesToUnits(MinutesPerDay) - MinutesToUnits(s.origDur)
	if top < 0 {
		top = 0
	}
	if top > maxTop {
		top = maxTop
	}
	start := SnapToQuarter(UnitsToMinutes(top))
	if start+s.origDur > MinutesPerDay {
		start = MinutesPerDay - s.origDur
	}
	s.block.StartMinute = start
	s.block.DurationMinute = s.origDur
}

func (s *DragSession) followDate(dx int) {
	if abs(dx) <= s.cfg.DateThreshold {
		return
	}
	s.hasMoved = true
	idx := s.originIdx + columnDelta(dx, s.columnWidth)
	s.displayIdx = clampIndex(idx, len(s.windows))
	s.block.Date = s.windows[s.displayIdx].Date
}

func (s *DragSession) resizeTop(dy int) {
	if abs(dy) > s.cfg.MoveThreshold {
		s.hasMoved = true
	}
	top := MinutesToUnits(s.origStart) + dy
	if top < 0 {
		top = 0
	}
	start := SnapToQuarter(UnitsToMinutes(top))
	if start >= s.origEnd {
		return
	}
	dur := s.origEnd - start
	if dur < MinDuration {
		dur = MinDuration
	}
	s.block.StartMinute = start
	s.block.DurationMinute = dur
}

func (s *DragSession) resizeBottom(dy int) {
	if abs(dy) > s.cfg.MoveThreshold {
		s.hasMoved = true
	}
	height := MinutesToUnits(s.origDur) + dy
	if height < MinutesToUnits(MinDuration) {
		height = MinutesToUnits(MinDuration)
	}
	end := SnapToQuarter(s.origStart + UnitsToMinutes(height))
	if end > MinutesPerDay || end-s.origStart < MinDuration {
		return
	}
	s.block.StartMinute = s.origStart
	s.block.DurationMinute = end - s.origStart
}

// Release ends the session. A press that never crossed a threshold is
// discarded with ok=false so the caller can treat it as a click; a
// real drag yields exactly one commit with the final snapped fields,
// with the authoritative date resolved from the release position.
func (s *DragSession) Release(x, y int, now time.Time) (DragCommit, bool) {
	if s.state == StateIdle {
		return DragCommit{}, false
	}
	defer s.reset()

	if !s.hasMoved {
		return DragCommit{}, false
	}
	s.lastDragEnd = now

	commit := DragCommit{
		ID:             s.block.ID,
		StartMinute:    s.block.StartMinute,
		DurationMinute: s.block.DurationMinute,
		Date:           s.block.Date,
	}
	if s.dateAxis {
		commit.Date = s.commitDate(x - s.originX)
	}
	return commit, true
}

// commitDate resolves the final date from the release displacement
// rather than from the live display value.
func (s *DragSession) commitDate(finalDeltaX int) time.Time {
	if abs(finalDeltaX) <= s.cfg.DateThreshold {
		return s.windows[s.originIdx].Date
	}
	idx := clampIndex(s.originIdx+columnDelta(finalDeltaX, s.columnWidth), len(s.windows))
	return s.windows[idx].Date
}

// Cancel abandons the session without committing.
func (s *DragSession) Cancel() {
	if s.state == StateIdle {
		return
	}
	s.reset()
}

func (s *DragSession) reset() {
	s.state = StateIdle
	s.hasMoved = false
	s.dateAxis = false
	s.windows = nil
	s.gen++
}

// ShouldIgnoreClick reports whether a click at now falls inside the
// post-drag suppression window, or lands while a moved drag is still
// live. Such clicks must not select events or spawn draft blocks.
func (s *DragSession) ShouldIgnoreClick(now time.Time) bool {
	if s.Active() && s.hasMoved {
		return true
	}
	if s.lastDragEnd.IsZero() {
		return false
	}
	return now.Sub(s.lastDragEnd) < s.cfg.ClickSuppressWindow
}

// DisplayDate returns the live date-follow value while a date-axis
// drag is in flight, and ok=false otherwise.
func (s *DragSession) DisplayDate() (time.Time, bool) {
	if !s.Active() || !s.dateAxis || !s.hasMoved {
		return time.Time{}, false
	}
	return s.windows[s.displayIdx].Date, true
}

func columnDelta(dx, columnWidth int) int {
	return int(math.Round(float64(dx) / float64(columnWidth)))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
