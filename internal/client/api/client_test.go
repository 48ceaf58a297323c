package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/pkg/api"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	endpoint := "http://localhost:8080/posts"
	client := NewClient(endpoint)

	assert.NotNil(t, client)
	assert.Equal(t, endpoint, client.Endpoint())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient(endpoint, WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

// TestClient_FetchBatch проверяет загрузку и преобразование записей
func TestClient_FetchBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("_limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "  first title ", "body": "b", "userId": 1},
			{"id": 2, "title": "second", "category": " Wisdom "},
			{"id": 3, "title": "   "},
			{"title": "no id"},
			{"id": "bad", "title": "wrong id type"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/posts", WithClock(func() time.Time { return fixedNow }))
	quotes, err := client.FetchBatch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, models.Quote{
		ID:           "1",
		Text:         "first title",
		Category:     models.DefaultCategory,
		DateAdded:    fixedNow,
		LastModified: fixedNow,
		Source:       models.SourceServer,
	}, quotes[0])
	assert.Equal(t, "2", quotes[1].ID)
	assert.Equal(t, "wisdom", quotes[1].Category)
}

// TestQuoteFromPost проверяет, что записи с сервера проходят те же проверки, что и импорт
func TestQuoteFromPost(t *testing.T) {
	tests := []struct {
		name         string
		post         api.Post
		wantOK       bool
		wantCategory string
	}{
		{name: "plain", post: api.Post{ID: 1, Title: "text", Category: "life"}, wantOK: true, wantCategory: "life"},
		{name: "no category", post: api.Post{ID: 2, Title: "text"}, wantOK: true, wantCategory: models.DefaultCategory},
		{name: "reserved category", post: api.Post{ID: 3, Title: "text", Category: " ALL "}, wantOK: true, wantCategory: models.DefaultCategory},
		{name: "category too long", post: api.Post{ID: 4, Title: "text", Category: strings.Repeat("c", 65)}, wantOK: true, wantCategory: models.DefaultCategory},
		{name: "max length text", post: api.Post{ID: 5, Title: strings.Repeat("a", 1000)}, wantOK: true, wantCategory: models.DefaultCategory},
		{name: "text too long", post: api.Post{ID: 6, Title: strings.Repeat("a", 1001)}, wantOK: false},
		{name: "blank text", post: api.Post{ID: 7, Title: "  "}, wantOK: false},
		{name: "no id", post: api.Post{Title: "text"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := quoteFromPost(tt.post, fixedNow)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCategory, q.Category)
			}
		})
	}
}

// TestClient_FetchBatch_Errors проверяет, что все сбои возвращаются как NetworkError
func TestClient_FetchBatch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "database unavailable"})
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "not found without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not an array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id": 1}`))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewClient(server.URL).FetchBatch(context.Background(), 10)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNetwork)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, "fetch", netErr.Op)
			assert.Equal(t, tt.wantStatus, netErr.StatusCode)
		})
	}
}

// TestClient_FetchBatch_Unreachable проверяет сбой транспорта
func TestClient_FetchBatch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	_, err := NewClient(endpoint).FetchBatch(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNetwork)
}

// TestClient_FetchBatch_Timeout проверяет таймаут запроса
func TestClient_FetchBatch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	_, err := client.FetchBatch(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNetwork)
}

// TestClient_PushRecord проверяет отправку записи
func TestClient_PushRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req api.CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Stay hungry", req.Title)
		assert.Equal(t, "Category: motivation", req.Body)
		assert.Equal(t, int64(1), req.UserID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Post{ID: 101, Title: req.Title, Body: req.Body, UserID: req.UserID})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	post, err := client.PushRecord(context.Background(), models.Quote{
		ID:       "local_x",
		Text:     "Stay hungry",
		Category: "motivation",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), post.ID)
}

// TestClient_Ping проверяет, что любой HTTP ответ считается доступностью
func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	client := NewClient(server.URL)
	assert.NoError(t, client.Ping(context.Background()))

	server.Close()
	err := client.Ping(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}
