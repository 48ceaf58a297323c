package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/client/iocli"
)

func (c *Cli) newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "daemon",
		Short:       "Run background sync with a status server and an import inbox",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationDaemon: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDaemon(cmd.Context())
		},
	}
}

func (c *Cli) runDaemon(ctx context.Context) error {
	if c.daemon == nil {
		return errors.New("daemon is not available in this build")
	}

	c.io.Println(infoBanner("Starting sync daemon on " + c.cfg.Daemon.Addr + " (Ctrl+C to stop)"))
	if err := c.daemon(ctx); err != nil {
		return err
	}
	c.io.Println(infoBanner("Daemon stopped"))
	return nil
}

func newVersionCmd(stdio iocli.IO, build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStorage: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			stdio.Println("Quotes Client")
			stdio.Printf("Version:    %s\n", build.Version)
			stdio.Printf("Build Date: %s\n", build.BuildDate)
			stdio.Printf("Git Commit: %s\n", build.GitCommit)
		},
	}
}
