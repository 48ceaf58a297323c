package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClear(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the collection with the default quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReset(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show storage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats()
		},
	}
}

// confirm спрашивает подтверждение, если не задан --yes
func (c *Cli) confirm(prompt string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	ok, err := c.io.Confirm(prompt)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println(infoBanner("Cancelled"))
	}
	return ok, nil
}

func (c *Cli) runClear(ctx context.Context, yes bool) error {
	ok, err := c.confirm("Are you sure you want to delete ALL quotes? This cannot be undone.", yes)
	if err != nil || !ok {
		return err
	}

	if err := c.data.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear quotes: %w", err)
	}
	c.io.Println(successBanner("All quotes cleared"))
	return nil
}

func (c *Cli) runReset(ctx context.Context, yes bool) error {
	ok, err := c.confirm("Reset to default quotes? This will remove all custom quotes.", yes)
	if err != nil || !ok {
		return err
	}

	if err := c.data.ResetToDefaults(ctx); err != nil {
		return fmt.Errorf("failed to reset quotes: %w", err)
	}
	c.io.Println(successBanner("Reset to default quotes"))
	return nil
}

func (c *Cli) runStats() error {
	c.io.Println(title("Storage Statistics"))
	c.io.Println()
	return templates.ExecuteTemplate(c.io, "stats", c.data.Stats())
}
