package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/quotesync/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUOTES_SERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := server.DefaultConfig()
	v.SetDefault("addr", defaults.Addr)
	v.SetDefault("db", defaults.DBPath)
	v.SetDefault("rate_limit", defaults.RateLimit)
	v.SetDefault("rate_window", defaults.RateWindow)
	v.SetDefault("log_level", defaults.LogLevel)

	var showVersion bool
	cmd := &cobra.Command{
		Use:           "quotes-server",
		Short:         "Reference posts feed for quote sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd)
				return nil
			}

			var cfg server.Config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to read configuration: %w", err)
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			logger.Info("Feed server starting",
				slog.String("version", Version),
				slog.String("db", cfg.DBPath),
			)
			return server.Run(cmd.Context(), cfg, logger, Version)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&showVersion, "version", false, "show version information")
	f.String("addr", defaults.Addr, "listen address")
	f.String("db", defaults.DBPath, "path to SQLite database")
	f.Int("rate-limit", defaults.RateLimit, "POST requests per client within the rate window")
	f.Duration("rate-window", defaults.RateWindow, "rate limit window")
	f.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	_ = v.BindPFlag("addr", f.Lookup("addr"))
	_ = v.BindPFlag("db", f.Lookup("db"))
	_ = v.BindPFlag("rate_limit", f.Lookup("rate-limit"))
	_ = v.BindPFlag("rate_window", f.Lookup("rate-window"))
	_ = v.BindPFlag("log_level", f.Lookup("log-level"))

	return cmd
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Quotes Feed Server\n")
	fmt.Fprintf(out, "Version:    %s\n", Version)
	fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
}
