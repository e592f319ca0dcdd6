// Package server exposes the move calculator over HTTP and websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	"github.com/VrushabBayas/chessboard"
	"github.com/VrushabBayas/chessboard/internal/config"
	"github.com/VrushabBayas/chessboard/internal/output"
	"github.com/VrushabBayas/chessboard/internal/query"
)

// Server serves the /moves, /pieces, /ws and /healthz endpoints.
type Server struct {
	cfg       *config.ServerConfig
	logger    *log.Logger
	accessLog io.Writer
	upgrader  websocket.Upgrader
}

// New creates a Server. Logs and access logs go to cfg.LogFile; access
// logging is skipped when cfg.Verbosity is 0.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg.Server,
		logger: log.New(cfg.LogFile, "[chessmoves] ", log.LstdFlags),
	}
	if cfg.Verbosity > 0 {
		s.accessLog = cfg.LogFile
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return s.cfg.AllowsOrigin(r.Header.Get("Origin"))
		},
	}
	return s
}

// Handler returns the routed handler wrapped in CORS and access logging.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	r.Get("/pieces", s.handlePieces)
	r.Get("/moves", s.handleMoves)
	r.Get("/ws", s.handleWS)

	var h http.Handler = handlers.CORS(
		handlers.AllowedOrigins(s.cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
	)(r)
	if s.accessLog != nil {
		h = handlers.CombinedLoggingHandler(s.accessLog, h)
	}
	return h
}

type piecesResponse struct {
	Pieces []string `json:"pieces"`
}

func (s *Server) handlePieces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, piecesResponse{Pieces: chessboard.Pieces()})
}

// handleMoves answers GET /moves?piece=&square=. Rejected input is a 400
// carrying the same body shape as a successful answer.
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	q := query.Query{
		Piece:  r.URL.Query().Get("piece"),
		Square: r.URL.Query().Get("square"),
	}
	res := query.Evaluate(q)

	status := http.StatusOK
	if res.Err != nil {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, output.ResultToJSON(res))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	s.logger.Printf("listening on %s", s.cfg.Addr)
	select {
	case <-ctx.Done():
		s.logger.Printf("shutdown requested: %v", ctx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Printf("graceful shutdown failed: %v", err)
		return srv.Close()
	}
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
