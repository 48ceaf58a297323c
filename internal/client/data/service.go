package data

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/session"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/store"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции над коллекцией цитат, которые вызывает слой представления
type Service interface {
	AddQuote(ctx context.Context, text, category string) (*AddResult, error)
	ImportQuotes(ctx context.Context, payload []byte) (int, error)
	ExportQuotes(ctx context.Context) ([]byte, error)
	ExportToFile(ctx context.Context, path string) (string, error)

	Quotes(category string) iter.Seq[models.Quote]
	Categories() []string
	CategoryCounts() map[string]int
	RandomQuote(ctx context.Context, category string) (*models.Quote, error)
	LastViewed(ctx context.Context) (*models.Quote, string, error)
	Stats() Stats

	ClearAll(ctx context.Context) error
	ResetToDefaults(ctx context.Context) error

	SelectCategory(ctx context.Context, category string) error
	SelectedCategory(ctx context.Context) (string, error)

	SetConflictPolicy(ctx context.Context, name string) (conflict.Policy, error)
	SetSyncEnabled(ctx context.Context, enabled bool) error
	SetSyncInterval(ctx context.Context, d time.Duration) error
}

// Scheduler is the part of the sync scheduler the facade notifies
type Scheduler interface {
	TriggerSync(t syncpkg.Trigger) bool
	SetInterval(d time.Duration)
}

// AddResult describes what happened to a newly added quote
type AddResult struct {
	PushErr     error // сбой отправки; запись поставлена в очередь
	Quote       models.Quote
	NewCategory bool // категория появилась впервые
	Pushed      bool // запись сразу отправлена на сервер
}

// Stats is the storage statistics summary
type Stats struct {
	Total        int
	Categories   int
	Custom       int
	PayloadBytes int
}

type service struct {
	store     *store.Store
	state     *session.State
	metadata  storage.MetadataStorage
	engine    syncpkg.Service
	scheduler Scheduler
	logger    *slog.Logger
	now       func() time.Time
	intn      func(n int) int
}

// Option настраивает service
type Option func(*service)

// WithScheduler подключает планировщик демона
func WithScheduler(s Scheduler) Option {
	return func(svc *service) {
		svc.scheduler = s
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(svc *service) {
		svc.now = now
	}
}

// WithRand подменяет генератор случайного индекса
func WithRand(intn func(n int) int) Option {
	return func(svc *service) {
		svc.intn = intn
	}
}

// NewService creates the quote facade
func NewService(
	st *store.Store,
	state *session.State,
	metadata storage.MetadataStorage,
	engine syncpkg.Service,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		store:    st,
		state:    state,
		metadata: metadata,
		engine:   engine,
		logger:   logger,
		now:      time.Now,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddQuote validates and stores a user-entered quote, then pushes it to the
// remote feed when possible.
func (s *service) AddQuote(ctx context.Context, text, category string) (*AddResult, error) {
	if err := validation.ValidateText(text); err != nil {
		return nil, err
	}
	if err := validation.ValidateCategory(category); err != nil {
		return nil, err
	}

	now := s.now()
	q := models.Quote{
		ID:           models.NewLocalID(),
		Text:         text,
		Category:     category,
		DateAdded:    now,
		LastModified: now,
		Source:       models.SourceLocal,
	}
	q.Normalize()

	result := &AddResult{Quote: q}
	err := s.store.Update(func(tx *store.Txn) error {
		result.NewCategory = !tx.HasCategory(q.Category)
		_, err := tx.Upsert(q)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("save quotes: %w", err)
	}
	s.logger.Info("Quote added", "id", q.ID, "category", q.Category)

	pushed, err := s.engine.PushRecord(ctx, q)
	result.Pushed = pushed
	if err != nil && !errors.Is(err, api.ErrNetwork) {
		return nil, err
	}
	result.PushErr = err

	if s.scheduler != nil {
		s.scheduler.TriggerSync(syncpkg.TriggerPush)
	}
	return result, nil
}

func (s *service) Quotes(category string) iter.Seq[models.Quote] {
	return s.store.ByCategory(category)
}

func (s *service) Categories() []string {
	return s.store.Categories()
}

func (s *service) CategoryCounts() map[string]int {
	return s.store.CategoryCounts()
}

// RandomQuote picks a quote from the category ("all" for any) and records it
// as the last viewed quote of the session.
func (s *service) RandomQuote(ctx context.Context, category string) (*models.Quote, error) {
	candidates := slices.Collect(s.store.ByCategory(category))
	if len(candidates) == 0 {
		return nil, ErrNoQuotes
	}

	q := candidates[s.intn(len(candidates))]

	if err := s.metadata.SaveLastViewedQuote(ctx, q); err != nil {
		s.logger.Warn("Failed to save last viewed quote", "error", err)
	}
	if err := s.metadata.SaveLastFilteredCategory(ctx, normalizeFilter(category)); err != nil {
		s.logger.Warn("Failed to save last filtered category", "error", err)
	}
	return &q, nil
}

// LastViewed returns the last viewed quote of the session if it still exists
func (s *service) LastViewed(ctx context.Context) (*models.Quote, string, error) {
	q, err := s.metadata.GetLastViewedQuote(ctx)
	if err != nil || q == nil {
		return nil, "", err
	}

	category, err := s.metadata.GetLastFilteredCategory(ctx)
	if err != nil {
		return nil, "", err
	}

	// запись могла быть удалена очисткой или сбросом
	stored, ok := s.store.Get(q.ID)
	if !ok {
		return nil, "", nil
	}
	return &stored, category, nil
}

func (s *service) Stats() Stats {
	stats := Stats{
		Categories:   len(s.store.CategoryCounts()),
		PayloadBytes: s.store.PayloadSize(),
	}
	for q := range s.store.All() {
		stats.Total++
		if q.IsCustom() {
			stats.Custom++
		}
	}
	return stats
}

func (s *service) ClearAll(ctx context.Context) error {
	s.store.Clear()
	return s.afterBulkChange(ctx, "All quotes cleared")
}

func (s *service) ResetToDefaults(ctx context.Context) error {
	s.store.ResetToDefaults()
	return s.afterBulkChange(ctx, "Quotes reset to defaults")
}

// afterBulkChange сохраняет store и сбрасывает очереди, потерявшие смысл
func (s *service) afterBulkChange(ctx context.Context, msg string) error {
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save quotes: %w", err)
	}

	s.state.ResetPending()
	if err := s.state.Persist(ctx); err != nil {
		s.logger.Warn("Failed to persist session state", "error", err)
	}

	s.logger.Info(msg, "count", s.store.Len())
	return nil
}

func (s *service) SelectCategory(ctx context.Context, category string) error {
	category = normalizeFilter(category)
	if category != storage.CategoryAll {
		if err := validation.ValidateCategory(category); err != nil {
			return err
		}
	}
	return s.metadata.SaveSelectedCategory(ctx, category)
}

func (s *service) SelectedCategory(ctx context.Context) (string, error) {
	return s.metadata.GetSelectedCategory(ctx)
}

func (s *service) SetConflictPolicy(ctx context.Context, name string) (conflict.Policy, error) {
	policy, err := conflict.ParsePolicy(name)
	if err != nil {
		return "", err
	}
	if err := s.metadata.SaveConflictStrategy(ctx, policy.String()); err != nil {
		return "", fmt.Errorf("save conflict policy: %w", err)
	}
	s.engine.SetPolicy(policy)
	s.logger.Info("Conflict policy changed", "policy", policy)
	return policy, nil
}

func (s *service) SetSyncEnabled(ctx context.Context, enabled bool) error {
	if err := s.metadata.SaveSyncEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("save sync enabled: %w", err)
	}
	s.state.SetSyncEnabled(enabled)
	if enabled {
		s.state.SetMessage("Sync enabled")
	} else {
		s.state.SetMessage("Sync disabled")
	}
	return nil
}

func (s *service) SetSyncInterval(ctx context.Context, d time.Duration) error {
	if err := validation.ValidateSyncInterval(d); err != nil {
		return err
	}
	if err := s.metadata.SaveSyncInterval(ctx, d); err != nil {
		return fmt.Errorf("save sync interval: %w", err)
	}
	if s.scheduler != nil {
		s.scheduler.SetInterval(d)
	}
	return nil
}

func normalizeFilter(category string) string {
	category = models.NormalizeCategory(category)
	if category == "" {
		return storage.CategoryAll
	}
	return category
}

// ExportFileName returns the default export file name for day
func ExportFileName(day time.Time) string {
	return "quotes-export-" + day.Format(time.DateOnly) + ".json"
}
