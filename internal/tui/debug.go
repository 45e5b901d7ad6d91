package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaveSteven/schedule-tui/internal/timeline"
)

// DebugLogger logs TUI state, input, and drag sessions to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "schedule-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogWarnf records a warning from the layout engine or ICS parser.
func LogWarnf(format string, args ...any) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("WARN", map[string]any{
		"msg": fmt.Sprintf(format, args...),
	})
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogMouse logs a mouse event with its resolved grid position.
func LogMouse(msg tea.MouseMsg, hit Hit) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("MOUSE", map[string]any{
		"x":      msg.X,
		"y":      msg.Y,
		"action": int(msg.Action),
		"button": int(msg.Button),
		"zone":   int(hit.Zone),
		"day":    hit.Day,
		"minute": hit.Minute,
	})
}

// LogDrag logs a drag session transition.
func LogDrag(s *timeline.DragSession, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	b := s.Block()
	debugLog.log("DRAG", map[string]any{
		"action":    action,
		"state":     int(s.State()),
		"has_moved": s.HasMoved(),
		"block_id":  b.ID,
		"start":     b.StartMinute,
		"duration":  b.DurationMinute,
	})
}

// LogCommit logs a committed drag result.
func LogCommit(c timeline.DragCommit) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("COMMIT", map[string]any{
		"id":       c.ID,
		"start":    c.StartMinute,
		"duration": c.DurationMinute,
		"date":     c.Date.Format("2006-01-02"),
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
