// Package app wires the client components for a single invocation.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/cli"
	"github.com/iudanet/quotesync/internal/client/config"
	"github.com/iudanet/quotesync/internal/client/daemon"
	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/logging"
	"github.com/iudanet/quotesync/internal/client/session"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/boltdb"
	"github.com/iudanet/quotesync/internal/client/store"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
)

// closers закрывает ресурсы в обратном порядке
type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Connect returns the cli.Connect that opens the local database and builds the
// services. Logs go to stderr unless a log file is configured.
func Connect(stderr io.Writer) cli.Connect {
	return func(ctx context.Context, cfg *config.Config, daemonMode bool) (*cli.Env, error) {
		return build(ctx, cfg, daemonMode, stderr)
	}
}

func build(ctx context.Context, cfg *config.Config, daemonMode bool, stderr io.Writer) (_ *cli.Env, err error) {
	logger, logCloser, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}
	res := closers{logCloser}
	defer func() {
		if err != nil {
			_ = res.Close()
		}
	}()

	db, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DBPath, err)
	}
	res = append(res, db)

	// каждый запуск демона начинает новую сессию
	if daemonMode {
		if err := db.ResetSession(ctx); err != nil {
			return nil, err
		}
	}

	metadata := storage.NewMetadata(db.Local(), db.Session())
	if err := cfg.ApplyStored(ctx, metadata); err != nil {
		return nil, err
	}

	st := store.New(db.Local(), logger)
	if _, err := st.Load(ctx); err != nil {
		logger.Warn("Using default quotes", "error", err)
	}

	state := session.New(db.Session(), !cfg.Offline, cfg.Sync.Enabled)
	if err := state.Load(ctx); err != nil {
		logger.Warn("Failed to restore sync session", "error", err)
	}
	if last, err := metadata.GetLastSyncTimestamp(ctx); err != nil {
		logger.Warn("Failed to read last sync time", "error", err)
	} else if !last.IsZero() {
		state.SetLastSyncAt(last)
	}

	client := api.NewClient(cfg.Endpoint, api.WithTimeout(cfg.Sync.FetchTimeout))
	engine := syncpkg.NewService(client, st, state, metadata, syncpkg.Config{
		Policy:       cfg.ConflictPolicy(),
		FetchLimit:   cfg.Sync.FetchLimit,
		FetchTimeout: cfg.Sync.FetchTimeout,
	}, logger)

	env := &cli.Env{
		Sync:   engine,
		State:  state,
		Config: cfg,
		Closer: res,
	}

	if !daemonMode {
		env.Data = data.NewService(st, state, metadata, engine, logger)
		return env, nil
	}

	// d создается после фасада, но scheduler вызывает hook только внутри d.Run
	var d *daemon.Daemon
	scheduler := syncpkg.NewScheduler(engine, syncpkg.SchedulerConfig{
		Interval:          cfg.Sync.Interval,
		InitialDelay:      syncpkg.DefaultSchedulerConfig().InitialDelay,
		ReconnectDebounce: syncpkg.DefaultSchedulerConfig().ReconnectDebounce,
	}, logger, func(trigger syncpkg.Trigger, result *syncpkg.SyncResult, err error) {
		d.OnCycle(trigger, result, err)
	})
	monitor := syncpkg.NewMonitor(client, state, scheduler, cfg.Sync.ProbeInterval, logger)

	svc := data.NewService(st, state, metadata, engine, logger, data.WithScheduler(scheduler))
	d = daemon.New(daemon.Config{
		Addr:     cfg.Daemon.Addr,
		InboxDir: cfg.Daemon.InboxDir,
	}, state, svc, logger)

	env.Data = svc
	env.RunDaemon = func(ctx context.Context) error {
		logger.Info("Starting daemon",
			slog.String("endpoint", cfg.Endpoint),
			slog.Duration("interval", cfg.Sync.Interval),
			slog.String("policy", string(cfg.ConflictPolicy())),
		)
		return d.Run(ctx, scheduler, monitor)
	}
	return env, nil
}
