package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
	"github.com/iudanet/quotesync/pkg/api"
)

// DefaultTimeout ограничивает каждый запрос к удаленной ленте
const DefaultTimeout = 30 * time.Second

// pushUserID - автор, от имени которого клиент отправляет записи
const pushUserID = 1

// Client представляет HTTP клиент удаленной ленты цитат
type Client struct {
	httpClient *http.Client
	endpoint   string
	now        func() time.Time
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут HTTP клиента
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithClock подменяет источник времени для dateAdded/lastModified
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient создает новый API клиент
// endpoint - полный URL коллекции, например https://jsonplaceholder.typicode.com/posts
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		now:      time.Now,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the remote collection URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchBatch загружает до limit записей и преобразует их в цитаты.
// Элементы без id или с пустым title отбрасываются.
func (c *Client) FetchBatch(ctx context.Context, limit int) ([]models.Quote, error) {
	target, err := c.withLimit(limit)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Err: err}
	}

	var items []json.RawMessage
	if err := c.doRequest(ctx, "fetch", http.MethodGet, target, nil, &items); err != nil {
		return nil, err
	}

	now := c.now()
	quotes := make([]models.Quote, 0, len(items))
	for _, item := range items {
		var post api.Post
		if err := json.Unmarshal(item, &post); err != nil {
			continue
		}
		q, ok := quoteFromPost(post, now)
		if !ok {
			continue
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// PushRecord отправляет цитату в удаленную ленту и возвращает созданную запись
func (c *Client) PushRecord(ctx context.Context, q models.Quote) (*api.Post, error) {
	req := api.CreatePostRequest{
		Title:  q.Text,
		Body:   "Category: " + q.Category,
		UserID: pushUserID,
	}

	var post api.Post
	if err := c.doRequest(ctx, "push", http.MethodPost, c.endpoint, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Ping проверяет доступность удаленной ленты.
// Любой HTTP ответ считается признаком наличия сети.
func (c *Client) Ping(ctx context.Context) error {
	target, err := c.withLimit(1)
	if err != nil {
		return &NetworkError{Op: "ping", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &NetworkError{Op: "ping", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: "ping", Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return nil
}

func (c *Client) withLimit(limit int) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("_limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// quoteFromPost проверяет элемент ленты на границе и строит цитату
func quoteFromPost(post api.Post, now time.Time) (models.Quote, bool) {
	if post.ID <= 0 {
		return models.Quote{}, false
	}

	// те же правила, что и для импорта, иначе export/import теряет записи с сервера
	text := strings.TrimSpace(post.Title)
	if validation.ValidateText(text) != nil {
		return models.Quote{}, false
	}

	category := models.NormalizeCategory(post.Category)
	if validation.ValidateCategory(category) != nil {
		category = models.DefaultCategory
	}

	return models.Quote{
		ID:           strconv.FormatInt(post.ID, 10),
		Text:         text,
		Category:     category,
		DateAdded:    now,
		LastModified: now,
		Source:       models.SourceServer,
	}, true
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, op, method, target string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(errResp.Error)}
		}
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	return nil
}
