package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/session"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
)

func (c *Cli) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization cycle now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd.Context())
		},
	}
}

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus()
		},
	}
}

func (c *Cli) newConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve conflicts waiting for a manual decision",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pending conflicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConflictsList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve ID [local|server]",
		Short: "Keep the local or the server version of a conflicting quote",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var choice string
			if len(args) == 2 {
				choice = args[1]
			}
			return c.runResolve(cmd.Context(), args[0], choice)
		},
	})
	return cmd
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println(title("Synchronization"))
	c.io.Println()

	result, err := c.engine.RunSyncCycle(ctx)
	if err != nil {
		if errors.Is(err, syncpkg.ErrSyncInProgress) {
			c.io.Println(warningBanner("Sync already in progress"))
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	snap := c.state.Snapshot()
	if result.Skipped {
		c.io.Println(warningBanner("Sync skipped: " + snap.StatusText))
		return nil
	}

	c.io.Println(levelBanner(session.LevelSuccess, snap.LastMessage))
	c.io.Println()
	c.io.Printf("Fetched from server: %d\n", result.Fetched)
	c.io.Printf("Added locally:       %d\n", result.Added)
	c.io.Printf("Conflicts resolved:  %d\n", result.ConflictsResolved)
	if result.ConflictsPending > 0 {
		c.io.Printf("Conflicts pending:   %d\n", result.ConflictsPending)
		c.io.Println("Run 'quotes conflicts list' to review them.")
	}
	if result.Pushed > 0 {
		c.io.Printf("Uploads retried:     %d\n", result.Pushed)
	}
	return nil
}

func (c *Cli) runStatus() error {
	snap := c.state.Snapshot()

	c.io.Println(title("Sync Status"))
	c.io.Println()
	c.io.Println(levelBanner(snap.Level, snap.StatusText))
	c.io.Println()

	view := struct {
		session.Snapshot
		Policy conflict.Policy
	}{
		Snapshot: snap,
		Policy:   c.engine.Policy(),
	}
	return templates.ExecuteTemplate(c.io, "status", view)
}

func (c *Cli) runConflictsList() error {
	pending := c.state.PendingConflicts()

	c.io.Println(title("Pending Conflicts"))
	c.io.Println()
	if len(pending) == 0 {
		c.io.Println("No pending conflicts.")
		return nil
	}

	c.io.Printf("Found %d conflict(s):\n\n", len(pending))
	for _, p := range pending {
		if err := templates.ExecuteTemplate(c.io, "conflict", p); err != nil {
			return err
		}
	}
	c.io.Println()
	c.io.Println("Use 'quotes conflicts resolve <id> local|server' to resolve.")
	return nil
}

func (c *Cli) runResolve(ctx context.Context, id, choiceName string) error {
	pending, ok := c.state.PendingConflict(id)
	if !ok {
		return fmt.Errorf("%w: %s", syncpkg.ErrConflictNotFound, id)
	}

	if choiceName == "" {
		if err := templates.ExecuteTemplate(c.io, "conflict", pending); err != nil {
			return err
		}
		var err error
		choiceName, err = c.io.Select("Keep which version?", []string{
			string(conflict.ChoiceLocal),
			string(conflict.ChoiceServer),
		})
		if err != nil {
			return fmt.Errorf("failed to read choice: %w", err)
		}
	}

	choice, err := conflict.ParseChoice(choiceName)
	if err != nil {
		return err
	}

	if err := c.engine.ResolveManually(ctx, id, choice); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}
	c.io.Println(successBanner(fmt.Sprintf("Conflict resolved using %s version", choice)))
	return nil
}
