package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

// categoryPrefix клиент передает категорию в теле записи
const categoryPrefix = "Category:"

func unixNow() int64 {
	return time.Now().Unix()
}

// ListPosts returns posts ordered by id; limit <= 0 returns every post
func (s *Storage) ListPosts(ctx context.Context, limit int) (_ []api.Post, err error) {
	query := `
		SELECT id, user_id, title, body, category
		FROM posts
		ORDER BY id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	posts := make([]api.Post, 0)
	for rows.Next() {
		var p api.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body, &p.Category); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// CreatePost stores a new post and returns it with the assigned id
func (s *Storage) CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, storage.ErrInvalidPost
	}
	userID := req.UserID
	if userID <= 0 {
		userID = 1
	}
	category := categoryFromBody(req.Body)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (user_id, title, body, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, title, req.Body, category, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get post id: %w", err)
	}

	return &api.Post{
		ID:       id,
		UserID:   userID,
		Title:    title,
		Body:     req.Body,
		Category: category,
	}, nil
}

// CountPosts returns the number of stored posts
func (s *Storage) CountPosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

// categoryFromBody извлекает категорию из тела вида "Category: <c>"
func categoryFromBody(body string) string {
	rest, ok := strings.CutPrefix(strings.TrimSpace(body), categoryPrefix)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(rest))
}
