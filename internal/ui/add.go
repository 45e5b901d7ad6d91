package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		colorHex string
		allDay   bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to your calendar.

Example:
  schedule add "Team standup" --date=2026-01-10 --start=09:00 --end=09:30
  schedule add "Conference" --date=2026-01-10 --all-day`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day := dateutil.TruncateToDay(time.Now())
			if date != "" {
				var err error
				day, err = dateutil.ParseDate(date)
				if err != nil {
					return err
				}
			}

			var startAt, endAt time.Time
			switch {
			case allDay:
				startAt = day
			case start == "":
				// Default to the next half-hour boundary.
				next := dateutil.NextHalfHour(time.Now())
				startAt = dateutil.AtMinutes(day, next.Hour()*60+next.Minute())
			default:
				m, err := parseClock(start)
				if err != nil {
					return err
				}
				startAt = dateutil.AtMinutes(day, m)
				if end != "" {
					m, err := parseClock(end)
					if err != nil {
						return err
					}
					endAt = dateutil.AtMinutes(day, m)
				}
			}

			e, err := event.New(args[0], startAt, endAt, allDay)
			if err != nil {
				return err
			}
			if colorHex != "" {
				e.Color = colorHex
			} else {
				e.Color = a.config.UI.DefaultColor
			}

			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			if e.AllDay {
				fmt.Printf("Created event %s: %s %s (all day)\n",
					shortID(e.ID), e.Start.Format("2006-01-02"), e.Title)
			} else {
				fmt.Printf("Created event %s: %s %s %s\n",
					shortID(e.ID), e.Start.Format("2006-01-02"), e.TimeRange(), e.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, default: start + 1h)")
	cmd.Flags().StringVar(&colorHex, "color", "", "Event color (#rrggbb, default from config)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "Create an all-day event")

	return cmd
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// shortID abbreviates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
