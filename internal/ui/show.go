package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

// workdayBudgetMinutes is the reference day length for the busy bar.
const workdayBudgetMinutes = 10 * 60

func (a *App) showCmd() *cobra.Command {
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's events",
		Long: `Display today's events in a simple agenda format.

This is a quick view without the interactive grid. Run 'schedule' with
no arguments for the full TUI.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			today := dateutil.TruncateToDay(time.Now())

			events, err := a.repo.ListEventsByDateRange(ctx, today, today)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("Nothing scheduled for today.")
				return nil
			}

			fmt.Printf("%s\n\n", formatHeader(today.Format("Monday, January 2, 2006")))

			opts := PrintOpts{Verbose: verbose}
			maxTitleWidth := opts.CalcMaxTitleWidth(50)

			var stats Stats
			for _, e := range events {
				PrintEventRow(e, opts, maxTitleWidth)
				AccumulateStats(&stats, e)
			}

			fmt.Println()
			PrintStats(stats)
			if stats.BusyMinutes > 0 {
				fmt.Printf("Day: %s\n", BusyBar(stats.BusyMinutes, workdayBudgetMinutes, 20))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full event titles")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
