// Package daemon runs the background sync session: the scheduler and the
// connectivity monitor, a local status server and the import inbox.
package daemon

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/quotesync/internal/client/session"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
)

// Worker is a long-running component stopped by canceling ctx
type Worker interface {
	Run(ctx context.Context) error
}

// Importer принимает содержимое файлов из inbox
type Importer interface {
	ImportQuotes(ctx context.Context, payload []byte) (int, error)
}

// Config holds daemon configuration
type Config struct {
	Addr     string // адрес status сервера; пусто - сервер не запускается
	InboxDir string // каталог импорта; пусто - inbox выключен
}

// CycleInfo describes the last cycle run by the scheduler
type CycleInfo struct {
	At                time.Time `json:"at"`
	Trigger           string    `json:"trigger"`
	Error             string    `json:"error,omitempty"`
	Added             int       `json:"added"`
	ConflictsResolved int       `json:"conflictsResolved"`
	ConflictsPending  int       `json:"conflictsPending"`
	Skipped           bool      `json:"skipped"`
}

// Status is the document served on /status and pushed on /ws
type Status struct {
	session.Snapshot
	LastCycle *CycleInfo `json:"lastCycle,omitempty"`
}

type Daemon struct {
	cfg      Config
	state    *session.State
	importer Importer
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	lastCycle *CycleInfo

	clients atomic.Int32 // подключенные websocket клиенты
}

// New creates a daemon
func New(cfg Config, state *session.State, importer Importer, logger *slog.Logger) *Daemon {
	return &Daemon{
		cfg:      cfg,
		state:    state,
		importer: importer,
		logger:   logger,
		now:      time.Now,
	}
}

// OnCycle is the scheduler hook recording the outcome of every cycle
func (d *Daemon) OnCycle(trigger syncpkg.Trigger, result *syncpkg.SyncResult, err error) {
	info := &CycleInfo{At: d.now(), Trigger: string(trigger)}
	if err != nil {
		info.Error = err.Error()
	}
	if result != nil {
		info.Added = result.Added
		info.ConflictsResolved = result.ConflictsResolved
		info.ConflictsPending = result.ConflictsPending
		info.Skipped = result.Skipped
	}

	d.mu.Lock()
	d.lastCycle = info
	d.mu.Unlock()
}

// Status returns the current session snapshot with the last cycle
func (d *Daemon) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st := Status{Snapshot: d.state.Snapshot()}
	if d.lastCycle != nil {
		last := *d.lastCycle
		st.LastCycle = &last
	}
	return st
}

// Run starts workers, the status server and the inbox, and blocks until ctx
// is canceled or one of them fails.
func (d *Daemon) Run(ctx context.Context, workers ...Worker) error {
	var (
		srv *statusServer
		box *inbox
		err error
	)
	if d.cfg.Addr != "" {
		if srv, err = d.listen(); err != nil {
			return err
		}
	}
	if d.cfg.InboxDir != "" {
		if box, err = newInbox(d.cfg.InboxDir, d.importer, d.logger); err != nil {
			if srv != nil {
				_ = srv.ln.Close()
			}
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error {
			return w.Run(ctx)
		})
	}
	if srv != nil {
		g.Go(func() error {
			return srv.serve(ctx)
		})
	}
	if box != nil {
		g.Go(func() error {
			return box.run(ctx)
		})
	}

	d.logger.Info("Daemon started", "addr", d.cfg.Addr, "inbox", d.cfg.InboxDir)
	err = g.Wait()
	d.logger.Info("Daemon stopped")
	return err
}
