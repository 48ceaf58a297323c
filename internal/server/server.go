// Package server implements the reference remote feed: a JSONPlaceholder
// compatible posts collection stored in SQLite.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/quotesync/internal/server/handlers"
	"github.com/iudanet/quotesync/internal/server/middleware"
	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/internal/server/storage/sqlite"
)

const healthPath = "/api/v1/health"

// Config holds server configuration
type Config struct {
	Addr       string        `mapstructure:"addr"`
	DBPath     string        `mapstructure:"db"`
	RateLimit  int           `mapstructure:"rate_limit"`  // POST запросов с одного IP за RateWindow
	RateWindow time.Duration `mapstructure:"rate_window"`
	LogLevel   string        `mapstructure:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Addr:       "127.0.0.1:8080",
		DBPath:     "feed.db",
		RateLimit:  60,
		RateWindow: time.Minute,
		LogLevel:   "info",
	}
}

// NewHandler builds the routed handler with the middleware chain
func NewHandler(posts storage.PostStorage, limiter *middleware.RateLimiter, logger *slog.Logger, version string) http.Handler {
	postsHandler := handlers.NewPostsHandler(logger, posts)
	healthHandler := handlers.NewHealthHandler(logger, posts, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", postsHandler.List)
	mux.HandleFunc("POST /posts", postsHandler.Create)
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	return middleware.Chain(mux,
		middleware.Recovery(logger),
		middleware.Logging(logger, healthPath),
		limiter.Middleware(logger, http.MethodPost),
	)
}

// Run opens the database, serves until ctx is canceled and shuts down gracefully
func Run(ctx context.Context, cfg Config, logger *slog.Logger, version string) error {
	store, err := sqlite.New(ctx, cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	srv := &http.Server{
		Handler:           NewHandler(store, limiter, logger, version),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return limiter.Run(ctx)
	})
	g.Go(func() error {
		logger.Info("Feed server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("Shutting down feed server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
