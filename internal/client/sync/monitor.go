package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/quotesync/internal/client/session"
)

// Pinger probes the remote feed
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReconnectNotifier is told when connectivity comes back
type ReconnectNotifier interface {
	NotifyReconnected()
}

// Monitor tracks connectivity by probing the remote feed periodically
type Monitor struct {
	pinger   Pinger
	state    *session.State
	notifier ReconnectNotifier
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
}

// NewMonitor creates a connectivity monitor
func NewMonitor(pinger Pinger, state *session.State, notifier ReconnectNotifier, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Monitor{
		pinger:   pinger,
		state:    state,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		timeout:  5 * time.Second,
	}
}

// Run probes immediately and then every interval until ctx is canceled
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// Probe performs one connectivity check and records transitions
func (m *Monitor) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.pinger.Ping(probeCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	online := err == nil
	if !m.state.SetOnline(online) {
		return
	}

	if online {
		m.logger.Info("Back online - resuming sync")
		m.state.SetMessage("Back online - resuming sync")
		if m.notifier != nil {
			m.notifier.NotifyReconnected()
		}
		return
	}

	m.logger.Warn("Offline - sync paused", "error", err)
	m.state.SetError("Offline - sync paused", err)
}
