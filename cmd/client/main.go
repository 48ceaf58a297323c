package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/quotesync/internal/client/app"
	"github.com/iudanet/quotesync/internal/client/cli"
	"github.com/iudanet/quotesync/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	build := cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	err := cli.Execute(ctx, iocli.NewStdio(), app.Connect(os.Stderr), build, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
