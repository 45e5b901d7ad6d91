package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DaveSteven/schedule-tui/internal/tui/theme"
)

// Styles holds the lipgloss styles derived from the active theme.
type Styles struct {
	palette *theme.Palette

	Title      lipgloss.Style
	DayLabel   lipgloss.Style
	TodayLabel lipgloss.Style
	Gutter     lipgloss.Style
	GridLine   lipgloss.Style
	Footer     lipgloss.Style
	Status     lipgloss.Style
	ErrorText  lipgloss.Style

	AllDayChip  lipgloss.Style
	AllDayBar   lipgloss.Style
	MoreBadge   lipgloss.Style
	CurrentTime lipgloss.Style
	DraftBlock  lipgloss.Style

	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style
	ModalLabel  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		Title:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		DayLabel:   lipgloss.NewStyle().Foreground(p.FgMuted),
		TodayLabel: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Gutter:     lipgloss.NewStyle().Foreground(p.FgMuted),
		GridLine:   lipgloss.NewStyle().Foreground(p.BgHighlight),
		Footer:     lipgloss.NewStyle().Foreground(p.FgMuted),
		Status:     lipgloss.NewStyle().Foreground(p.Warning),
		ErrorText:  lipgloss.NewStyle().Foreground(p.Current),

		AllDayChip:  lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgHighlight),
		AllDayBar:   lipgloss.NewStyle().Foreground(p.Bg).Background(p.Accent).Bold(true),
		MoreBadge:   lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),
		CurrentTime: lipgloss.NewStyle().Foreground(p.Current).Bold(true),
		DraftBlock:  lipgloss.NewStyle().Foreground(p.Bg).Background(p.Draft),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Modal.Border).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Foreground(p.Modal.Highlight).Bold(true),
		ModalLabel: lipgloss.NewStyle().Foreground(p.Modal.Muted),
	}
}

// EventBlock builds the style for an event block of the given color.
// The block body uses a darkened shade of the event color so the title
// stays readable; a selected block uses the selection background.
func (s *Styles) EventBlock(colorHex string, selected, dragging bool) lipgloss.Style {
	bg := theme.Darken(colorHex, 0.45)
	if theme.IsLight(string(s.palette.Bg)) {
		bg = theme.Lighten(colorHex, 0.65)
	}
	fg := theme.TextOn(bg, "#ffffff", "#1e1e2e")

	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
	if selected {
		st = st.Background(s.palette.BgSelection).Bold(true)
	}
	if dragging {
		st = st.Background(lipgloss.Color(colorHex)).Bold(true)
	}
	return st
}
