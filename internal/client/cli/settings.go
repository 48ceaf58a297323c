package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/client/conflict"
)

func (c *Cli) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Change sync settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "policy remote-wins|local-wins|manual",
			Short:     "Set the conflict resolution policy",
			Args:      cobra.ExactArgs(1),
			ValidArgs: policyNames(),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runSetPolicy(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "enable",
			Short: "Enable synchronization",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runSetSyncEnabled(cmd.Context(), true)
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Disable synchronization",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runSetSyncEnabled(cmd.Context(), false)
			},
		},
		&cobra.Command{
			Use:     "interval DURATION",
			Short:   "Set the sync interval (10s to 5m)",
			Example: "  quotes config interval 45s",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runSetInterval(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runShowConfig()
			},
		},
	)
	return cmd
}

func policyNames() []string {
	names := make([]string, 0, len(conflict.Policies))
	for _, p := range conflict.Policies {
		names = append(names, p.String())
	}
	return names
}

func (c *Cli) runSetPolicy(ctx context.Context, name string) error {
	policy, err := c.data.SetConflictPolicy(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to set policy: %w", err)
	}
	c.io.Println(successBanner(fmt.Sprintf("Conflict resolution policy set to %s", policy)))
	return nil
}

func (c *Cli) runSetSyncEnabled(ctx context.Context, enabled bool) error {
	if err := c.data.SetSyncEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("failed to change sync setting: %w", err)
	}
	if enabled {
		c.io.Println(successBanner("Sync enabled"))
	} else {
		c.io.Println(warningBanner("Sync disabled"))
	}
	return nil
}

func (c *Cli) runSetInterval(ctx context.Context, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	if err := c.data.SetSyncInterval(ctx, d); err != nil {
		return fmt.Errorf("failed to set interval: %w", err)
	}
	c.io.Println(successBanner(fmt.Sprintf("Sync interval set to %s", d)))
	return nil
}

func (c *Cli) runShowConfig() error {
	c.io.Println(title("Configuration"))
	c.io.Println()
	c.io.Printf("Endpoint:       %s\n", c.cfg.Endpoint)
	c.io.Printf("Database:       %s\n", c.cfg.DBPath)
	c.io.Printf("Sync enabled:   %t\n", c.state.SyncEnabled())
	c.io.Printf("Sync interval:  %s\n", c.cfg.Sync.Interval)
	c.io.Printf("Policy:         %s\n", c.engine.Policy())
	c.io.Printf("Fetch limit:    %d\n", c.cfg.Sync.FetchLimit)
	c.io.Printf("Daemon address: %s\n", c.cfg.Daemon.Addr)
	c.io.Printf("Import inbox:   %s\n", c.cfg.Daemon.InboxDir)
	return nil
}
