package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

// maxBodyBytes ограничивает размер тела POST /posts
const maxBodyBytes = 64 << 10

// PostsHandler serves the posts collection
type PostsHandler struct {
	logger  *slog.Logger
	storage storage.PostStorage
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, storage storage.PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /posts?_limit=N
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("_limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.logger.Warn("Invalid _limit parameter", slog.String("limit", raw))
			sendError(w, h.logger, "_limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	posts, err := h.storage.ListPosts(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list posts", slog.Any("error", err))
		sendError(w, h.logger, "failed to list posts", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, posts, http.StatusOK)
}

// Create обрабатывает POST /posts
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePostRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode post", slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.storage.CreatePost(r.Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPost) {
			sendError(w, h.logger, "title must not be empty", http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to create post", slog.Any("error", err))
		sendError(w, h.logger, "failed to create post", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Post created", slog.Int64("id", post.ID), slog.String("category", post.Category))
	sendJSON(w, h.logger, post, http.StatusCreated)
}
