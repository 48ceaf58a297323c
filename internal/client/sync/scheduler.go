package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Trigger names the reason a cycle was requested
type Trigger string

const (
	TriggerStartup   Trigger = "startup"
	TriggerInterval  Trigger = "interval"
	TriggerManual    Trigger = "manual"
	TriggerPush      Trigger = "push"
	TriggerReconnect Trigger = "reconnect"
)

// SchedulerConfig holds scheduler configuration.
type SchedulerConfig struct {
	Interval          time.Duration // период синхронизации
	InitialDelay      time.Duration // задержка первого цикла после старта
	ReconnectDebounce time.Duration // задержка цикла после восстановления сети
}

// DefaultSchedulerConfig returns default scheduler configuration.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:          30 * time.Second,
		InitialDelay:      2 * time.Second,
		ReconnectDebounce: time.Second,
	}
}

// CycleHook is called after every cycle the scheduler runs
type CycleHook func(trigger Trigger, result *SyncResult, err error)

// Scheduler owns cycle execution: a single goroutine runs every cycle, so
// interval ticks, manual requests, pushes and reconnects never overlap.
// Requests arriving while one is queued are coalesced.
type Scheduler struct {
	svc    Service
	logger *slog.Logger
	hook   CycleHook
	cfg    SchedulerConfig

	triggers   chan Trigger
	intervalCh chan time.Duration

	mu             sync.Mutex
	reconnectTimer *time.Timer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(svc Service, cfg SchedulerConfig, logger *slog.Logger, hook CycleHook) *Scheduler {
	defaults := DefaultSchedulerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.InitialDelay < 0 {
		cfg.InitialDelay = 0
	}
	if cfg.ReconnectDebounce <= 0 {
		cfg.ReconnectDebounce = defaults.ReconnectDebounce
	}

	return &Scheduler{
		svc:        svc,
		logger:     logger,
		hook:       hook,
		cfg:        cfg,
		triggers:   make(chan Trigger, 1),
		intervalCh: make(chan time.Duration, 1),
	}
}

// TriggerSync requests a cycle; returns false if a request is already queued
func (s *Scheduler) TriggerSync(t Trigger) bool {
	select {
	case s.triggers <- t:
		return true
	default:
		s.logger.Debug("Sync request coalesced", "trigger", t)
		return false
	}
}

// NotifyReconnected schedules a debounced reconnect cycle.
// Repeated notifications inside the debounce window produce one cycle.
func (s *Scheduler) NotifyReconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reconnectTimer != nil {
		s.reconnectTimer.Stop()
	}
	s.reconnectTimer = time.AfterFunc(s.cfg.ReconnectDebounce, func() {
		s.TriggerSync(TriggerReconnect)
	})
}

// SetInterval changes the period of interval cycles
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	// устаревшее значение вытесняется новым
	select {
	case <-s.intervalCh:
	default:
	}
	s.intervalCh <- d
}

// Run executes the scheduler loop until ctx is canceled
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	initial := time.NewTimer(s.cfg.InitialDelay)
	defer initial.Stop()

	defer s.stopReconnect()

	s.logger.Info("Sync scheduler started", "interval", s.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return nil
		case <-initial.C:
			s.runCycle(ctx, TriggerStartup)
		case <-ticker.C:
			s.runCycle(ctx, TriggerInterval)
		case t := <-s.triggers:
			s.runCycle(ctx, t)
		case d := <-s.intervalCh:
			s.logger.Info("Sync interval changed", "interval", d)
			ticker.Reset(d)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, t Trigger) {
	result, err := s.svc.RunSyncCycle(ctx)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		s.logger.Debug("Sync already in progress, skipping", "trigger", t)
	case err != nil:
		s.logger.Warn("Sync cycle failed", "trigger", t, "error", err)
	case result.Skipped:
		s.logger.Debug("Sync cycle skipped", "trigger", t)
	default:
		s.logger.Debug("Sync cycle finished", "trigger", t, "added", result.Added)
	}

	if s.hook != nil {
		s.hook(t, result, err)
	}
}

func (s *Scheduler) stopReconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reconnectTimer != nil {
		s.reconnectTimer.Stop()
		s.reconnectTimer = nil
	}
}
