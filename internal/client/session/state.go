// Package session holds the sync session state shared by the merge engine,
// the scheduler and the presentation layer.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// PendingPush is a local record whose upload failed and waits for a retry
type PendingPush struct {
	AttemptedAt time.Time    `json:"attemptedAt"`
	Record      models.Quote `json:"record"`
	Attempts    int          `json:"attempts"`
}

// Level classifies the status text for rendering
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Snapshot is an immutable copy of the session state
type Snapshot struct {
	LastSyncAt       *time.Time         `json:"lastSyncAt"`
	StatusText       string             `json:"statusText"`
	Level            Level              `json:"level"`
	LastMessage      string             `json:"lastMessage,omitempty"`
	LastError        string             `json:"lastError,omitempty"`
	PendingPushes    []PendingPush      `json:"pendingPushes"`
	PendingConflicts []conflict.Pending `json:"pendingConflicts"`
	IsOnline         bool               `json:"isOnline"`
	SyncEnabled      bool               `json:"syncEnabled"`
}

// State is the single per-process sync session. Safe for concurrent use.
type State struct {
	kv storage.KVStore // session substrate

	mu          sync.RWMutex
	lastSyncAt  time.Time
	pushes      []PendingPush
	conflicts   []conflict.Pending
	message     string
	lastError   string
	isOnline    bool
	syncEnabled bool

	subMu   sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int
}

// New creates the session state. kv is the session-scoped substrate used by
// Load and Persist; it may be nil for a purely in-memory session.
func New(kv storage.KVStore, online, syncEnabled bool) *State {
	return &State{
		kv:          kv,
		isOnline:    online,
		syncEnabled: syncEnabled,
		subs:        make(map[int]chan Snapshot),
	}
}

// update выполняет мутацию под блокировкой и уведомляет подписчиков
func (s *State) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	// subMu берется до освобождения mu, чтобы подписчики видели снимки по порядку
	s.subMu.Lock()
	s.mu.Unlock()

	s.broadcastLocked(snap)
	s.subMu.Unlock()
}

// SetOnline records connectivity; reports whether it changed
func (s *State) SetOnline(online bool) (changed bool) {
	s.update(func() {
		changed = s.isOnline != online
		s.isOnline = online
	})
	return changed
}

func (s *State) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline
}

func (s *State) SetSyncEnabled(enabled bool) {
	s.update(func() {
		s.syncEnabled = enabled
	})
}

func (s *State) SyncEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncEnabled
}

// CanSync reports whether a cycle is allowed to touch the network
func (s *State) CanSync() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline && s.syncEnabled
}

func (s *State) SetLastSyncAt(ts time.Time) {
	s.update(func() {
		s.lastSyncAt = ts
	})
}

func (s *State) LastSyncAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSyncAt
}

// SetMessage sets the transient status message and clears the last error
func (s *State) SetMessage(msg string) {
	s.update(func() {
		s.message = msg
		s.lastError = ""
	})
}

// SetError records a failure shown as the transient status message
func (s *State) SetError(msg string, err error) {
	s.update(func() {
		s.message = msg
		if err != nil {
			s.lastError = err.Error()
		}
	})
}

// AddPendingConflict queues p; an earlier conflict for the same record is replaced
func (s *State) AddPendingConflict(p conflict.Pending) {
	s.update(func() {
		i := slices.IndexFunc(s.conflicts, func(c conflict.Pending) bool { return c.RecordID == p.RecordID })
		if i >= 0 {
			s.conflicts[i] = p
			return
		}
		s.conflicts = append(s.conflicts, p)
	})
}

// RemovePendingConflict drops the conflict for id; reports whether it existed
func (s *State) RemovePendingConflict(id string) (removed bool) {
	s.update(func() {
		before := len(s.conflicts)
		s.conflicts = slices.DeleteFunc(s.conflicts, func(c conflict.Pending) bool { return c.RecordID == id })
		removed = len(s.conflicts) != before
	})
	return removed
}

func (s *State) PendingConflict(id string) (conflict.Pending, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.conflicts, func(c conflict.Pending) bool { return c.RecordID == id })
	if i < 0 {
		return conflict.Pending{}, false
	}
	return s.conflicts[i], true
}

func (s *State) PendingConflicts() []conflict.Pending {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.conflicts)
}

// ClearPendingConflicts drops every queued conflict
func (s *State) ClearPendingConflicts() {
	s.update(func() {
		s.conflicts = nil
	})
}

// AddPendingPush queues a failed upload. A record already queued gets its
// snapshot refreshed and attempts incremented.
func (s *State) AddPendingPush(record models.Quote, attemptedAt time.Time) {
	s.update(func() {
		i := slices.IndexFunc(s.pushes, func(p PendingPush) bool { return p.Record.ID == record.ID })
		if i >= 0 {
			s.pushes[i].Record = record
			s.pushes[i].AttemptedAt = attemptedAt
			s.pushes[i].Attempts++
			return
		}
		s.pushes = append(s.pushes, PendingPush{Record: record, AttemptedAt: attemptedAt, Attempts: 1})
	})
}

// TakePendingPushes removes and returns every queued push
func (s *State) TakePendingPushes() []PendingPush {
	var taken []PendingPush
	s.update(func() {
		taken = s.pushes
		s.pushes = nil
	})
	return taken
}

// RequeuePushes puts back pushes that failed again, keeping their order in
// front of anything queued meanwhile
func (s *State) RequeuePushes(pushes []PendingPush) {
	if len(pushes) == 0 {
		return
	}
	s.update(func() {
		queued := s.pushes
		s.pushes = slices.Clone(pushes)
		for _, p := range queued {
			if !slices.ContainsFunc(s.pushes, func(q PendingPush) bool { return q.Record.ID == p.Record.ID }) {
				s.pushes = append(s.pushes, p)
			}
		}
	})
}

func (s *State) PendingPushes() []PendingPush {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.pushes)
}

// ResetPending drops all queued conflicts and pushes (used by clear and reset)
func (s *State) ResetPending() {
	s.update(func() {
		s.conflicts = nil
		s.pushes = nil
	})
}

// Snapshot returns a consistent copy of the whole state
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		IsOnline:         s.isOnline,
		SyncEnabled:      s.syncEnabled,
		PendingPushes:    slices.Clone(s.pushes),
		PendingConflicts: slices.Clone(s.conflicts),
		LastMessage:      s.message,
		LastError:        s.lastError,
	}
	if !s.lastSyncAt.IsZero() {
		ts := s.lastSyncAt
		snap.LastSyncAt = &ts
	}
	snap.StatusText, snap.Level = statusText(s.isOnline, s.syncEnabled, len(s.conflicts), s.lastSyncAt)
	return snap
}

// statusText выводит статус по приоритету: offline, disabled, конфликты, последняя синхронизация
func statusText(online, enabled bool, conflicts int, lastSync time.Time) (string, Level) {
	switch {
	case !online:
		return "Offline", LevelError
	case !enabled:
		return "Sync disabled", LevelWarning
	case conflicts > 0:
		return fmt.Sprintf("%d conflict(s) pending", conflicts), LevelWarning
	case !lastSync.IsZero():
		return "Last sync: " + lastSync.Local().Format(time.TimeOnly), LevelSuccess
	default:
		return "Ready to sync", LevelInfo
	}
}

// Load restores pending conflicts and pushes from the session substrate
func (s *State) Load(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	var (
		conflicts []conflict.Pending
		pushes    []PendingPush
	)
	if err := s.loadJSON(ctx, storage.KeyPendingConflicts, &conflicts); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, storage.KeyPendingPushes, &pushes); err != nil {
		return err
	}

	s.update(func() {
		s.conflicts = conflicts
		s.pushes = pushes
	})
	return nil
}

// Persist writes pending conflicts and pushes to the session substrate
func (s *State) Persist(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	s.mu.RLock()
	conflicts, pushes := slices.Clone(s.conflicts), slices.Clone(s.pushes)
	s.mu.RUnlock()

	if err := s.saveJSON(ctx, storage.KeyPendingConflicts, conflicts); err != nil {
		return err
	}
	return s.saveJSON(ctx, storage.KeyPendingPushes, pushes)
}

func (s *State) loadJSON(ctx context.Context, key string, v any) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &storage.Error{Op: "decode", Key: key, Err: err}
	}
	return nil
}

func (s *State) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &storage.Error{Op: "encode", Key: key, Err: err}
	}
	return s.kv.Put(ctx, key, data)
}
