package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		verbose   bool
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events within a date range.

If no dates are specified, lists today's events.
If only --start is specified, lists events for that single day.
If both --start and --end are specified, lists events in that range (inclusive).`,
		Example: `  schedule list
  schedule list --start=2026-01-15
  schedule list --start=2026-01-15 --end=2026-01-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			start, end, err := parseRange(startDate, endDate)
			if err != nil {
				return err
			}

			events, err := a.repo.ListEventsByDateRange(context.Background(), start, end)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found in the specified date range.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose, ShowDuration: true}
			maxTitleWidth := opts.CalcMaxTitleWidth(40)

			var currentDate string
			var stats Stats
			for _, e := range events {
				date := e.Start.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("%s\n", formatHeader(e.Start.Format("=== Mon Jan 2 ===")))
					currentDate = date
				}
				PrintEventRow(e, opts, maxTitleWidth)
				AccumulateStats(&stats, e)
			}

			fmt.Println()
			PrintStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full event titles")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// parseRange resolves the --start/--end flags to an inclusive date
// range, defaulting to today.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start := dateutil.TruncateToDay(time.Now())
	if startDate != "" {
		var err error
		start, err = dateutil.ParseDate(startDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	end := start
	if endDate != "" {
		var err error
		end, err = dateutil.ParseDate(endDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, dateutil.ErrEndDateBeforeStart
	}
	return start, end, nil
}
