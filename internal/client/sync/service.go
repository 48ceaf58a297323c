package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/session"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out remote_mock.go . RemoteClient

// RemoteClient is the remote feed as seen by the merge engine
type RemoteClient interface {
	FetchBatch(ctx context.Context, limit int) ([]models.Quote, error)
	PushRecord(ctx context.Context, q models.Quote) (*api.Post, error)
	Ping(ctx context.Context) error
}

// Service определяет интерфейс движка синхронизации
type Service interface {
	// RunSyncCycle выполняет один цикл: повтор отложенных отправок, загрузка, слияние, сохранение.
	// Если цикл уже выполняется, возвращает ErrSyncInProgress.
	RunSyncCycle(ctx context.Context) (*SyncResult, error)

	// ResolveManually применяет выбор пользователя к отложенному конфликту
	ResolveManually(ctx context.Context, recordID string, choice conflict.Choice) error

	// PushRecord отправляет новую локальную запись; при неудаче ставит ее в очередь
	PushRecord(ctx context.Context, q models.Quote) (pushed bool, err error)

	Policy() conflict.Policy
	SetPolicy(p conflict.Policy)
}

// Config задает параметры цикла синхронизации
type Config struct {
	Policy       conflict.Policy
	FetchLimit   int
	FetchTimeout time.Duration
}

// DefaultConfig returns the cycle parameters used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Policy:       conflict.DefaultPolicy,
		FetchLimit:   10,
		FetchTimeout: 30 * time.Second,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	Fetched           int  // количество полученных с сервера записей
	Added             int  // новые записи, вставленные в store
	ConflictsResolved int  // конфликты, разрешенные политикой
	ConflictsPending  int  // конфликты, ожидающие ручного решения
	Pushed            int  // успешно повторенные отправки
	Skipped           bool // цикл пропущен: offline или синхронизация выключена
}

// Changed reports whether the cycle mutated the store
func (r *SyncResult) Changed() bool {
	return r.Added > 0 || r.ConflictsResolved > 0
}

// service реализует Service
type service struct {
	remote   RemoteClient
	store    *store.Store
	state    *session.State
	metadata storage.MetadataStorage
	logger   *slog.Logger
	now      func() time.Time

	fetchLimit   int
	fetchTimeout time.Duration

	cycleMu  sync.Mutex // удерживается на время цикла
	policyMu sync.RWMutex
	policy   conflict.Policy
}

// Option настраивает service
type Option func(*service)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates the merge engine
func NewService(
	remote RemoteClient,
	st *store.Store,
	state *session.State,
	metadata storage.MetadataStorage,
	cfg Config,
	logger *slog.Logger,
	opts ...Option,
) Service {
	defaults := DefaultConfig()
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = defaults.FetchLimit
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaults.FetchTimeout
	}
	if cfg.Policy == "" {
		cfg.Policy = defaults.Policy
	}

	s := &service{
		remote:       remote,
		store:        st,
		state:        state,
		metadata:     metadata,
		logger:       logger,
		now:          time.Now,
		fetchLimit:   cfg.FetchLimit,
		fetchTimeout: cfg.FetchTimeout,
		policy:       cfg.Policy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Policy() conflict.Policy {
	s.policyMu.RLock()
	defer s.policyMu.RUnlock()
	return s.policy
}

func (s *service) SetPolicy(p conflict.Policy) {
	s.policyMu.Lock()
	defer s.policyMu.Unlock()
	s.policy = p
}

// RunSyncCycle performs one reconciliation against the remote feed.
//
// The returned result is valid even when err wraps storage.ErrStorage:
// the merge happened in memory but could not be written.
func (s *service) RunSyncCycle(ctx context.Context) (*SyncResult, error) {
	if !s.cycleMu.TryLock() {
		s.logger.Debug("Sync already in progress, skipping")
		return nil, ErrSyncInProgress
	}
	defer s.cycleMu.Unlock()

	if !s.state.CanSync() {
		s.logger.Debug("Sync skipped", "online", s.state.IsOnline(), "enabled", s.state.SyncEnabled())
		return &SyncResult{Skipped: true}, nil
	}

	s.logger.Info("Starting synchronization", "policy", s.Policy())
	result := &SyncResult{}

	result.Pushed = s.retryPendingPushes(ctx)

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	remote, err := s.remote.FetchBatch(fetchCtx, s.fetchLimit)
	cancel()
	if err != nil {
		s.logger.Warn("Failed to fetch remote batch", "error", err)
		s.state.SetError("Sync failed: "+err.Error(), err)
		s.persistSession(ctx)
		return nil, fmt.Errorf("fetch remote batch: %w", err)
	}
	result.Fetched = len(remote)

	queued, settled := s.merge(remote, result)
	// запись, разрешенная политикой или снова согласованная, больше не ждет решения
	for _, id := range settled {
		if s.state.RemovePendingConflict(id) {
			s.logger.Debug("Pending conflict settled by sync", "id", id)
		}
	}
	for _, p := range queued {
		s.state.AddPendingConflict(p)
	}

	var saveErr error
	if result.Changed() {
		if err := s.store.Save(ctx); err != nil {
			s.logger.Warn("Failed to save merged quotes", "error", err)
			saveErr = fmt.Errorf("save merged quotes: %w", err)
		}
	}

	now := s.now()
	if err := s.metadata.SaveLastSyncTimestamp(ctx, now); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}
	s.state.SetLastSyncAt(now)

	switch {
	case saveErr != nil:
		s.state.SetError("Sync completed but quotes could not be saved", saveErr)
	case len(remote) == 0:
		s.state.SetMessage("No new quotes from server")
	default:
		s.state.SetMessage(completedMessage(result))
	}
	s.persistSession(ctx)

	s.logger.Info("Synchronization completed",
		"fetched", result.Fetched,
		"added", result.Added,
		"resolved", result.ConflictsResolved,
		"pending", result.ConflictsPending,
		"pushed", result.Pushed)

	return result, saveErr
}

// merge применяет удаленный batch к store одной транзакцией.
// Возвращает конфликты, которые нужно поставить в очередь ручного разрешения,
// и id записей, чьи отложенные конфликты больше не актуальны.
func (s *service) merge(remote []models.Quote, result *SyncResult) (queued []conflict.Pending, settled []string) {
	policy := s.Policy()
	now := s.now()

	_ = s.store.Update(func(tx *store.Txn) error {
		for _, incoming := range remote {
			local, ok := tx.Get(incoming.ID)
			if !ok {
				incoming.Source = models.SourceServer
				if _, err := tx.Upsert(incoming); err != nil {
					s.logger.Warn("Dropping invalid remote quote", "id", incoming.ID, "error", err)
					continue
				}
				result.Added++
				continue
			}

			desc := conflict.Detect(local, incoming)
			if desc == nil {
				settled = append(settled, local.ID)
				continue
			}

			outcome := conflict.Resolve(policy, local, incoming, desc, now)
			if !outcome.Applied {
				s.logger.Debug("Conflict queued for manual resolution", "id", local.ID, "fields", len(desc.Differences))
				queued = append(queued, conflict.Pending{
					Descriptor:     *desc,
					LocalSnapshot:  local,
					RemoteSnapshot: incoming,
					DetectedAt:     now,
				})
				result.ConflictsPending++
				continue
			}

			if _, err := tx.Upsert(outcome.Result); err != nil {
				s.logger.Warn("Failed to apply resolved conflict", "id", local.ID, "error", err)
				continue
			}
			s.logger.Debug("Conflict resolved", "id", local.ID, "policy", policy)
			settled = append(settled, local.ID)
			result.ConflictsResolved++
		}
		return nil
	})

	return queued, settled
}

func completedMessage(r *SyncResult) string {
	msg := fmt.Sprintf("Sync completed: %d added, %d conflicts resolved", r.Added, r.ConflictsResolved)
	if r.ConflictsPending > 0 {
		msg += fmt.Sprintf(", %d awaiting manual resolution", r.ConflictsPending)
	}
	return msg
}

// ResolveManually applies the user's choice to a pending conflict.
// If the record was removed meanwhile the conflict is dropped without mutation.
func (s *service) ResolveManually(ctx context.Context, recordID string, choice conflict.Choice) error {
	pending, ok := s.state.PendingConflict(recordID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrConflictNotFound, recordID)
	}

	now := s.now()
	var applied bool
	err := s.store.Update(func(tx *store.Txn) error {
		current, ok := tx.Get(recordID)
		if !ok {
			return nil
		}
		if _, err := tx.Upsert(pending.Apply(choice, current, now)); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply manual resolution: %w", err)
	}

	s.state.RemovePendingConflict(recordID)

	if applied {
		s.logger.Info("Conflict resolved manually", "id", recordID, "choice", choice)
		if err := s.store.Save(ctx); err != nil {
			s.persistSession(ctx)
			return fmt.Errorf("save resolved quote: %w", err)
		}
		s.state.SetMessage(fmt.Sprintf("Conflict for %s resolved using %s version", recordID, choice))
	} else {
		s.logger.Info("Dropping conflict for removed quote", "id", recordID)
	}

	s.persistSession(ctx)
	return nil
}

// PushRecord uploads q when possible and queues it otherwise
func (s *service) PushRecord(ctx context.Context, q models.Quote) (bool, error) {
	if !s.state.CanSync() {
		s.state.AddPendingPush(q, s.now())
		s.persistSession(ctx)
		return false, nil
	}

	post, err := s.remote.PushRecord(ctx, q)
	if err != nil {
		s.logger.Warn("Failed to push quote, queued for retry", "id", q.ID, "error", err)
		s.state.AddPendingPush(q, s.now())
		s.persistSession(ctx)
		return false, fmt.Errorf("push quote: %w", err)
	}

	s.logger.Info("Quote pushed to server", "id", q.ID, "remote_id", post.ID)
	return true, nil
}

// retryPendingPushes повторяет отложенные отправки; неудачные остаются в очереди
func (s *service) retryPendingPushes(ctx context.Context) int {
	pushes := s.state.TakePendingPushes()
	if len(pushes) == 0 {
		return 0
	}

	pushed := 0
	var failed []session.PendingPush
	for i, p := range pushes {
		if ctx.Err() != nil {
			failed = append(failed, pushes[i:]...)
			break
		}
		if _, err := s.remote.PushRecord(ctx, p.Record); err != nil {
			s.logger.Debug("Pending push failed again", "id", p.Record.ID, "attempts", p.Attempts+1, "error", err)
			p.Attempts++
			p.AttemptedAt = s.now()
			failed = append(failed, p)
			continue
		}
		pushed++
	}

	s.state.RequeuePushes(failed)
	if pushed > 0 {
		s.logger.Info("Pending pushes delivered", "count", pushed, "remaining", len(failed))
	}
	return pushed
}

func (s *service) persistSession(ctx context.Context) {
	if err := s.state.Persist(ctx); err != nil {
		s.logger.Warn("Failed to persist session state", "error", err)
	}
}
