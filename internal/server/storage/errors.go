package storage

import "errors"

// Common storage errors
var (
	// ErrInvalidPost indicates that the post has no title
	ErrInvalidPost = errors.New("invalid post")
)
