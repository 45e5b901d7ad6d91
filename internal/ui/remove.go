package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

func (a *App) removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an event",
		Long: `Remove an event by its ID. An unambiguous ID prefix is enough.

Example:
  schedule remove 3f2a91c4`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			id, err := a.resolveEventID(ctx, args[0])
			if err != nil {
				return err
			}

			e, err := a.repo.GetEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching event: %w", err)
			}

			if err := a.repo.DeleteEvent(ctx, id); err != nil {
				return fmt.Errorf("removing event: %w", err)
			}

			if e != nil {
				fmt.Printf("Removed event %s: %s\n", shortID(id), e.Title)
			} else {
				fmt.Printf("Removed event %s\n", shortID(id))
			}
			return nil
		},
	}

	return cmd
}

// resolveEventID expands an ID prefix to a full event ID. Ambiguous or
// unknown prefixes are errors.
func (a *App) resolveEventID(ctx context.Context, prefix string) (string, error) {
	if e, err := a.repo.GetEvent(ctx, prefix); err != nil {
		return "", err
	} else if e != nil {
		return e.ID, nil
	}

	ids, err := a.repo.ListEventIDs(ctx, prefix)
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", event.ErrEventNotFound
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("ambiguous event ID %q matches %d events: %s...",
			prefix, len(ids), strings.Join(shortIDs(ids[:2]), ", "))
	}
}

func shortIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = shortID(id)
	}
	return out
}
