package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/quotesync/pkg/api"
)

// PostCounter is the part of the storage the health check probes
type PostCounter interface {
	CountPosts(ctx context.Context) (int, error)
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	counter PostCounter
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, counter PostCounter, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		counter: counter,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health
// 503 если база данных недоступна
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := h.counter.CountPosts(r.Context())
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		sendJSON(w, h.logger, api.HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
		return
	}

	sendJSON(w, h.logger, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
		Posts:   n,
	}, http.StatusOK)
}
