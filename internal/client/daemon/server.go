package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

type statusServer struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
}

func (d *Daemon) listen() (*statusServer, error) {
	ln, err := net.Listen("tcp", d.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", d.cfg.Addr, err)
	}

	return &statusServer{
		srv: &http.Server{
			Handler:           d.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: d.logger,
	}, nil
}

// serve работает до отмены ctx; запросы наследуют ctx, поэтому websocket
// соединения закрываются вместе с сервером
func (s *statusServer) serve(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Status server listening", "addr", s.ln.Addr().String())
		errCh <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("status server shutdown: %w", err)
	}
	return nil
}

// Handler returns the status API: /status, /health and the /ws stream
func (d *Daemon) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", d.handleStatus)
	mux.HandleFunc("GET /health", d.handleHealth)
	mux.HandleFunc("GET /ws", d.handleWebSocket)
	return mux
}

func (d *Daemon) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, d.Status())
}

func (d *Daemon) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"clients": d.clients.Load(),
	})
}

// handleWebSocket отправляет статус при подключении и после каждого изменения сессии
func (d *Daemon) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	})
	if err != nil {
		d.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.CloseNow()

	d.clients.Add(1)
	defer d.clients.Add(-1)

	// клиент ничего не присылает; CloseRead отменяет ctx при отключении
	ctx := conn.CloseRead(r.Context())

	updates, cancel := d.state.Subscribe()
	defer cancel()

	if err := writeStatus(ctx, conn, d.Status()); err != nil {
		d.logger.Debug("WebSocket write failed", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusGoingAway, "daemon stopping")
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			st := d.Status()
			st.Snapshot = snap
			if err := writeStatus(ctx, conn, st); err != nil {
				d.logger.Debug("WebSocket write failed", "error", err)
				return
			}
		}
	}
}

func writeStatus(ctx context.Context, conn *websocket.Conn, st Status) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, st)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
