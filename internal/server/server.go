// Package server exposes a single game session over HTTP.
//
//	POST /api/step   {"user_input": "..."} -> {"system_output": "...", "state": {...}}
//	POST /api/reset  start a new session
//	GET  /api/state  current snapshot
//	GET  /metrics    Prometheus exposition
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tatianab/kira-suspicion/internal/engine"
	"github.com/tatianab/kira-suspicion/internal/models"
	"github.com/tatianab/kira-suspicion/internal/observe"
)

const maxBodyBytes = 64 << 10

// Server owns one GameState and serializes every turn played against it.
type Server struct {
	engine  *engine.Engine
	logger  *slog.Logger
	metrics *observe.Metrics

	mu    sync.Mutex
	state *models.GameState
}

// New returns a Server with a fresh session. logger and metrics may be nil.
func New(e *engine.Engine, logger *slog.Logger, metrics *observe.Metrics) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:  e,
		logger:  logger,
		metrics: metrics,
		state:   models.NewGameState(),
	}
}

// Handler returns the routed, instrumented HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/step", s.handleStep)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.Handle("GET /metrics", promhttp.Handler())
	return observe.Middleware(s.metrics)(mux)
}

type stepRequest struct {
	UserInput string `json:"user_input"`
}

type stepResponse struct {
	SystemOutput string          `json:"system_output"`
	State        models.Snapshot `json:"state"`
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	// A malformed body is treated like an empty one.
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.logger.Debug("step: decode body", "err", err)
	}

	input := strings.TrimSpace(req.UserInput)
	if input == "" {
		writeError(w, http.StatusBadRequest, "No input provided.")
		return
	}

	s.mu.Lock()
	state, out := s.engine.RunStep(r.Context(), s.state, input)
	s.state = state
	snap := state.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stepResponse{SystemOutput: out, State: snap})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state = models.NewGameState()
	s.mu.Unlock()

	s.logger.Info("session reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "State reset."})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.state.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
