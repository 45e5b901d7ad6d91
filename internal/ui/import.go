package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/event"
	"github.com/DaveSteven/schedule-tui/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.ics ...]",
		Short: "Import events from ICS calendar files",
		Long: `Import events from one or more ICS calendar files.

With no arguments, imports the ics_files listed in the config.

Example:
  schedule import ~/calendars/work.ics`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths = a.config.Calendar.ICSFiles
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files given and no ics_files configured")
			}

			total := 0
			for _, path := range paths {
				count, err := importCalendar(context.Background(), a.repo, path)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d events from %s\n", count, path)
				total += count
			}
			if len(paths) > 1 {
				fmt.Printf("Imported %d events total\n", total)
			}
			return nil
		},
	}

	return cmd
}

func importCalendar(ctx context.Context, dest event.Repository, path string) (int, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return 0, err
	}
	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("calendar file does not exist: %s", resolved)
		}
		return 0, fmt.Errorf("checking calendar file: %w", err)
	}

	parser := &ics.Parser{
		Warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
	events, err := parser.ImportFile(resolved)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", resolved, err)
	}

	if err := dest.CreateEvents(ctx, events); err != nil {
		return 0, fmt.Errorf("storing events from %s: %w", resolved, err)
	}
	return len(events), nil
}
