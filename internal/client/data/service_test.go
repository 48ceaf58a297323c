package data

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/session"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/client/store"
	syncpkg "github.com/iudanet/quotesync/internal/client/sync"
	"github.com/iudanet/quotesync/internal/models"
)

var testNow = time.Date(2024, 8, 15, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	svc      Service
	engine   *syncpkg.ServiceMock
	store    *store.Store
	state    *session.State
	metadata *storage.Metadata
	local    *memory.Store
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return testNow }

	local, sess := memory.New(), memory.New()
	st := store.New(local, logger, store.WithClock(clock))
	state := session.New(sess, true, true)
	metadata := storage.NewMetadata(local, sess)
	engine := &syncpkg.ServiceMock{
		PushRecordFunc: func(ctx context.Context, q models.Quote) (bool, error) {
			return true, nil
		},
		SetPolicyFunc: func(p conflict.Policy) {},
	}

	opts = append([]Option{WithClock(clock)}, opts...)
	return &testEnv{
		svc:      NewService(st, state, metadata, engine, logger, opts...),
		engine:   engine,
		store:    st,
		state:    state,
		metadata: metadata,
		local:    local,
	}
}

func TestAddQuote(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.svc.AddQuote(ctx, "  Stay hungry, stay foolish. ", " Motivation ")
	require.NoError(t, err)

	assert.True(t, models.IsLocalID(res.Quote.ID))
	assert.Equal(t, "Stay hungry, stay foolish.", res.Quote.Text)
	assert.Equal(t, "motivation", res.Quote.Category)
	assert.Equal(t, models.SourceLocal, res.Quote.Source)
	assert.Equal(t, testNow, res.Quote.DateAdded)
	assert.True(t, res.NewCategory)
	assert.True(t, res.Pushed)

	// сохранено и отправлено
	_, err = env.local.Get(ctx, storage.KeyQuotes)
	require.NoError(t, err)
	require.Len(t, env.engine.PushRecordCalls(), 1)
	assert.Equal(t, res.Quote.ID, env.engine.PushRecordCalls()[0].Q.ID)

	res, err = env.svc.AddQuote(ctx, "Another one", "motivation")
	require.NoError(t, err)
	assert.False(t, res.NewCategory)
}

func TestAddQuote_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		text     string
		category string
	}{
		{name: "empty text", text: "   ", category: "life"},
		{name: "empty category", text: "text", category: ""},
		{name: "reserved category", text: "text", category: "All"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.AddQuote(context.Background(), tt.text, tt.category)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
	assert.Equal(t, 0, env.store.Len())
	assert.Empty(t, env.engine.PushRecordCalls())
}

func TestAddQuote_PushFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	pushErr := &api.NetworkError{Op: "push", Err: errors.New("connection refused")}
	env.engine.PushRecordFunc = func(ctx context.Context, q models.Quote) (bool, error) {
		return false, pushErr
	}

	res, err := env.svc.AddQuote(context.Background(), "text", "life")
	require.NoError(t, err)
	assert.False(t, res.Pushed)
	assert.ErrorIs(t, res.PushErr, api.ErrNetwork)
	assert.Equal(t, 1, env.store.Len())
}

type schedulerStub struct {
	triggers  []syncpkg.Trigger
	intervals []time.Duration
}

func (s *schedulerStub) TriggerSync(t syncpkg.Trigger) bool {
	s.triggers = append(s.triggers, t)
	return true
}

func (s *schedulerStub) SetInterval(d time.Duration) {
	s.intervals = append(s.intervals, d)
}

func TestAddQuote_TriggersScheduler(t *testing.T) {
	sched := &schedulerStub{}
	env := newTestEnv(t, WithScheduler(sched))

	_, err := env.svc.AddQuote(context.Background(), "text", "life")
	require.NoError(t, err)
	assert.Equal(t, []syncpkg.Trigger{syncpkg.TriggerPush}, sched.triggers)
}

func TestImportQuotes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payload := []byte(`[
		{"text": "Valid one", "category": "Life"},
		{"id": "x1", "text": "Valid two", "category": "wisdom", "dateAdded": "2023-01-02T03:04:05Z", "source": "local"},
		{"text": "", "category": "life"},
		{"text": 42, "category": "life"},
		{"text": "no category"},
		"not an object",
		null
	]`)

	n, err := env.svc.ImportQuotes(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all := slices.Collect(env.store.All())
	require.Len(t, all, 2)

	assert.Contains(t, all[0].ID, models.ImportedIDPrefix)
	assert.Equal(t, "life", all[0].Category)
	assert.Equal(t, models.SourceImported, all[0].Source)
	assert.Equal(t, testNow, all[0].DateAdded)

	assert.Equal(t, "x1", all[1].ID)
	assert.Equal(t, models.SourceLocal, all[1].Source)
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), all[1].DateAdded)
	// lastModified не может быть раньше dateAdded
	assert.False(t, all[1].LastModified.Before(all[1].DateAdded))
}

func TestImportQuotes_UpsertByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.ImportQuotes(ctx, []byte(`[{"id": "x1", "text": "first", "category": "life"}]`))
	require.NoError(t, err)
	_, err = env.svc.ImportQuotes(ctx, []byte(`[{"id": "x1", "text": "second", "category": "life"}]`))
	require.NoError(t, err)

	require.Equal(t, 1, env.store.Len())
	q, _ := env.store.Get("x1")
	assert.Equal(t, "second", q.Text)
}

func TestImportQuotes_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		reason  string
	}{
		{name: "not json", payload: `{{{`, reason: "Invalid file format. Expected an array of quotes."},
		{name: "object", payload: `{"text": "a", "category": "b"}`, reason: "Invalid file format. Expected an array of quotes."},
		{name: "empty array", payload: `[]`, reason: "No valid quotes found in the file."},
		{name: "only invalid", payload: `[{"text": " "}]`, reason: "No valid quotes found in the file."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.svc.ImportQuotes(context.Background(), []byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrImportFormat)

			var fmtErr *ImportFormatError
			require.True(t, errors.As(err, &fmtErr))
			assert.Equal(t, tt.reason, fmtErr.Reason)
			assert.Equal(t, 0, env.store.Len())
		})
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestEnv(t)
	src.store.ResetToDefaults()
	_, err := src.svc.AddQuote(ctx, "A <custom> & quote", "life")
	require.NoError(t, err)

	payload, err := src.svc.ExportQuotes(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "\n  {")
	assert.Contains(t, string(payload), "<custom> &")

	dst := newTestEnv(t)
	n, err := dst.svc.ImportQuotes(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, src.store.Len(), n)

	assert.Equal(t, slices.Collect(src.store.All()), slices.Collect(dst.store.All()))
}

// записи, полученные с сервера, должны переживать export/import так же, как локальные
func TestExportImport_RoundTripWithFeedRecords(t *testing.T) {
	ctx := context.Background()
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "reserved category", "category": "all"},
			{"id": 2, "title": "` + strings.Repeat("a", 1001) + `"},
			{"id": 3, "title": "ordinary", "category": "life"}
		]`))
	}))
	defer feed.Close()

	remote, err := api.NewClient(feed.URL).FetchBatch(ctx, 10)
	require.NoError(t, err)

	src := newTestEnv(t)
	for _, q := range remote {
		_, err := src.store.Upsert(q)
		require.NoError(t, err)
	}
	require.Equal(t, 2, src.store.Len())

	payload, err := src.svc.ExportQuotes(ctx)
	require.NoError(t, err)

	dst := newTestEnv(t)
	n, err := dst.svc.ImportQuotes(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, src.store.Len(), n)

	pairs := func(st *store.Store) [][2]string {
		var out [][2]string
		for q := range st.All() {
			out = append(out, [2]string{q.Text, q.Category})
		}
		return out
	}
	assert.ElementsMatch(t, pairs(src.store), pairs(dst.store))
	assert.Contains(t, pairs(dst.store), [2]string{"reserved category", models.DefaultCategory})
}

func TestExportToFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.store.ResetToDefaults()

	path := filepath.Join(t.TempDir(), "out.json")
	written, err := env.svc.ExportToFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Equal(t, "quotes-export-2024-08-15.json", ExportFileName(testNow))
}

func TestClearAndReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.svc.AddQuote(ctx, "custom", "life")
	require.NoError(t, err)
	env.state.AddPendingPush(models.Quote{ID: "local_1", Text: "t", Category: "c"}, testNow)

	require.NoError(t, env.svc.ClearAll(ctx))
	assert.Equal(t, 0, env.store.Len())
	assert.Empty(t, env.state.PendingPushes())

	raw, err := env.local.Get(ctx, storage.KeyQuotes)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	require.NoError(t, env.svc.ResetToDefaults(ctx))
	assert.Equal(t, len(models.DefaultQuotes(testNow)), env.store.Len())
	assert.Equal(t, 0, env.svc.Stats().Custom)
}

func TestRandomQuoteAndLastViewed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, WithRand(func(n int) int { return n - 1 }))

	_, err := env.svc.RandomQuote(ctx, "all")
	assert.ErrorIs(t, err, ErrNoQuotes)

	env.store.ResetToDefaults()

	q, err := env.svc.RandomQuote(ctx, "motivation")
	require.NoError(t, err)
	assert.Equal(t, "motivation", q.Category)
	assert.Equal(t, "local_default_5", q.ID)

	last, category, err := env.svc.LastViewed(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, q.ID, last.ID)
	assert.Equal(t, "motivation", category)

	// поиск идет по id: текст мог измениться после синхронизации
	renamed := *last
	renamed.Text = "rewritten by server"
	_, err = env.store.Upsert(renamed)
	require.NoError(t, err)
	_, err = env.store.Upsert(models.Quote{ID: "dup", Text: q.Text, Category: "life", Source: models.SourceLocal})
	require.NoError(t, err)

	last, _, err = env.svc.LastViewed(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, q.ID, last.ID)
	assert.Equal(t, "rewritten by server", last.Text)

	// удаленная запись больше не показывается
	env.store.Clear()
	last, _, err = env.svc.LastViewed(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.store.ResetToDefaults()
	_, err := env.svc.AddQuote(ctx, "custom", "brand-new")
	require.NoError(t, err)

	stats := env.svc.Stats()
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 1, stats.Custom)
	assert.Equal(t, 8, stats.Categories)
	assert.Equal(t, env.store.PayloadSize(), stats.PayloadBytes)
}

func TestSelectCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.svc.SelectCategory(ctx, " Wisdom "))
	got, err := env.svc.SelectedCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wisdom", got)

	require.NoError(t, env.svc.SelectCategory(ctx, "ALL"))
	got, err = env.svc.SelectedCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "all", got)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	sched := &schedulerStub{}
	env := newTestEnv(t, WithScheduler(sched))

	policy, err := env.svc.SetConflictPolicy(ctx, "server-wins")
	require.NoError(t, err)
	assert.Equal(t, conflict.PolicyRemoteWins, policy)
	require.Len(t, env.engine.SetPolicyCalls(), 1)
	stored, err := env.metadata.GetConflictStrategy(ctx)
	require.NoError(t, err)
	assert.Equal(t, "remote-wins", stored)

	_, err = env.svc.SetConflictPolicy(ctx, "coin-flip")
	assert.ErrorIs(t, err, models.ErrValidation)

	require.NoError(t, env.svc.SetSyncEnabled(ctx, false))
	assert.False(t, env.state.SyncEnabled())
	enabled, ok, err := env.metadata.GetSyncEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, enabled)

	require.NoError(t, env.svc.SetSyncInterval(ctx, 45*time.Second))
	assert.Equal(t, []time.Duration{45 * time.Second}, sched.intervals)

	assert.ErrorIs(t, env.svc.SetSyncInterval(ctx, 5*time.Second), models.ErrValidation)
	assert.ErrorIs(t, env.svc.SetSyncInterval(ctx, 10*time.Minute), models.ErrValidation)
}
