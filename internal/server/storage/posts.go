package storage

import (
	"context"

	"github.com/iudanet/quotesync/pkg/api"
)

//go:generate moq -out posts_mock.go . PostStorage

// PostStorage defines persistence of the reference feed
type PostStorage interface {
	// ListPosts returns posts ordered by id; limit <= 0 returns every post
	ListPosts(ctx context.Context, limit int) ([]api.Post, error)

	// CreatePost stores a new post and returns it with the assigned id.
	// Returns ErrInvalidPost if the title is empty.
	CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error)

	// CountPosts returns the number of stored posts
	CountPosts(ctx context.Context) (int, error)
}
