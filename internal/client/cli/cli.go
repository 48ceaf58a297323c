// Package cli implements the quotes command line client.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/quotesync/internal/client/config"
	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/iocli"
	"github.com/iudanet/quotesync/internal/client/session"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
)

// Env содержит зависимости команд, собранные после чтения конфигурации
type Env struct {
	Data   data.Service
	Sync   syncpkg.Service
	State  *session.State
	Config *config.Config

	// RunDaemon запускает фоновый процесс; задан только в режиме daemon
	RunDaemon func(ctx context.Context) error

	Closer io.Closer
}

// Connect builds the environment for cfg. daemon is true for the daemon command.
type Connect func(ctx context.Context, cfg *config.Config, daemon bool) (*Env, error)

// BuildInfo is printed by the version command
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type Cli struct {
	io     iocli.IO
	data   data.Service
	engine syncpkg.Service
	state  *session.State
	cfg    *config.Config
	daemon func(ctx context.Context) error
	now    func() time.Time
}

// globalFlags хранит значения persistent флагов
type globalFlags struct {
	configFile string
}

// NewRootCmd creates the command tree. connect is called once per invocation
// after the configuration is loaded, except for commands that need no storage.
func NewRootCmd(stdio iocli.IO, connect Connect, build BuildInfo) *cobra.Command {
	var flags globalFlags
	var env *Env
	v := viper.New()
	c := &Cli{io: stdio, now: time.Now}

	root := &cobra.Command{
		Use:           "quotes",
		Short:         "Offline-first quote collection synced with a remote feed",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoStorage] == "true" || cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.Load(v, flags.configFile)
			if err != nil {
				return err
			}

			env, err = connect(cmd.Context(), cfg, cmd.Annotations[annotationDaemon] == "true")
			if err != nil {
				return err
			}
			c.attach(env)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if env == nil || env.Closer == nil {
				return nil
			}
			return env.Closer.Close()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: ./quotes.yaml or ~/.config/quotesync/quotes.yaml)")
	pf.String("db", "", "path to local database")
	pf.String("endpoint", "", "remote feed URL")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "write logs to a rotated file instead of stderr")
	pf.Bool("offline", false, "start in offline mode")
	_ = v.BindPFlag("db", pf.Lookup("db"))
	_ = v.BindPFlag("endpoint", pf.Lookup("endpoint"))
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = v.BindPFlag("offline", pf.Lookup("offline"))

	root.SetOut(stdio)
	root.SetErr(stdio)

	root.AddCommand(
		c.newAddCmd(),
		c.newListCmd(),
		c.newShowCmd(),
		c.newCategoriesCmd(),
		c.newImportCmd(),
		c.newExportCmd(),
		c.newClearCmd(),
		c.newResetCmd(),
		c.newStatsCmd(),
		c.newSyncCmd(),
		c.newStatusCmd(),
		c.newConflictsCmd(),
		c.newConfigCmd(),
		c.newDaemonCmd(),
		newVersionCmd(stdio, build),
	)
	return root
}

func (c *Cli) attach(env *Env) {
	c.data = env.Data
	c.engine = env.Sync
	c.state = env.State
	c.cfg = env.Config
	c.daemon = env.RunDaemon
}

// Execute runs the command tree and prints a failure banner on error
func Execute(ctx context.Context, stdio iocli.IO, connect Connect, build BuildInfo, args []string) error {
	root := NewRootCmd(stdio, connect, build)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		stdio.Println(errorBanner(fmt.Sprintf("Error: %v", err)))
	}
	return err
}
