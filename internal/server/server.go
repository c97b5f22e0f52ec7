// Package server exposes the scoring engine over a REST API for the
// matching UI.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cpkonha/talentgraph/internal/engine"
	"github.com/cpkonha/talentgraph/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Config holds server configuration.
type Config struct {
	Port   int
	Engine *engine.Engine
	Logger *zap.Logger
	Store  *store.Store // optional; nil disables search auditing
}

// Server is the HTTP server around one scoring engine.
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	store      *store.Store
	logger     *zap.Logger
}

// New creates a server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("server requires a scoring engine")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine: cfg.Engine,
		store:  cfg.Store,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("POST /team/evaluate", s.handleEvaluateTeam)
	mux.HandleFunc("POST /teams/recommend", s.handleRecommendTeams)
	mux.HandleFunc("GET /relatedness", s.handleRelatedness)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", listener.Addr().String()))
		if serveErr := s.httpServer.Serve(listener); serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error body.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
