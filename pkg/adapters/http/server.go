package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/session"
)

// Engine defines the solve surface the HTTP adapter needs from the core.
type Engine interface {
	Solve(ctx context.Context, algorithm string, inputs map[string]any) (*domain.Trace, error)
	Algorithms() []string
}

// Server exposes the engine and session manager over REST.
type Server struct {
	engine   Engine
	sessions *session.Manager
	version  string
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion sets the version string reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewHandler creates the HTTP handler for the engine and session manager.
func NewHandler(engine Engine, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		engine:   engine,
		sessions: sessions,
		version:  "dev",
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Post("/solve", s.solve)
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", s.listSessions)
			r.Post("/", s.createSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.getSession)
				r.Delete("/", s.deleteSession)
				r.Get("/trace", s.getTrace)
				r.Post("/step", s.stepSession)
			})
		})
	})
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsInvalidInput(err), errors.Is(err, domain.ErrUnknownAlgorithm):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":        "chalkline-http",
		"version":    s.version,
		"algorithms": s.engine.Algorithms(),
	})
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Algorithms())
}

type solveRequest struct {
	Algorithm string         `json:"algorithm"`
	Inputs    map[string]any `json:"inputs"`
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var body solveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	trace, err := s.engine.Solve(r.Context(), body.Algorithm, body.Inputs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trace)
}

type createSessionRequest struct {
	ID        string         `json:"id,omitempty"`
	Algorithm string         `json:"algorithm"`
	Inputs    map[string]any `json:"inputs"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// Validate inputs up front so a broken session is never persisted.
	if _, err := s.engine.Solve(r.Context(), body.Algorithm, body.Inputs); err != nil {
		s.writeError(w, err)
		return
	}

	id := body.ID
	if id == "" {
		id = uuid.NewString()
	}

	state, err := s.sessions.LoadOrStart(r.Context(), id, body.Algorithm, body.Inputs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session created", "session_id", id, "algorithm", body.Algorithm)
	s.writeJSON(w, http.StatusCreated, state)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getTrace recomputes the session's trace from its stored inputs. Traces are
// never persisted; determinism makes the recompute equivalent.
func (s *Server) getTrace(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	trace, err := s.engine.Solve(r.Context(), state.Algorithm, state.Inputs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trace)
}

type stepRequest struct {
	// Delta moves the cursor relative to its current position.
	Delta int `json:"delta,omitempty"`
	// Seek, when set, moves the cursor to an absolute position.
	Seek *int `json:"seek,omitempty"`
}

type stepResponse struct {
	Cursor int          `json:"cursor"`
	Total  int          `json:"total"`
	Step   *domain.Step `json:"step,omitempty"`
}

// stepSession advances or rewinds the persisted cursor. Out-of-range targets
// clamp; stepping an exhausted session is not an error.
func (s *Server) stepSession(w http.ResponseWriter, r *http.Request) {
	var body stepRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	var resp stepResponse

	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		trace, err := s.engine.Solve(ctx, state.Algorithm, state.Inputs)
		if err != nil {
			return fmt.Errorf("failed to rebuild trace: %w", err)
		}

		cursor := state.Cursor + body.Delta
		if body.Seek != nil {
			cursor = *body.Seek
		}
		if cursor < 0 {
			cursor = 0
		}
		if cursor > len(trace.Steps) {
			cursor = len(trace.Steps)
		}

		state.Cursor = cursor
		if err := s.sessions.Store().Save(ctx, sessionID, state); err != nil {
			return err
		}

		resp = stepResponse{Cursor: cursor, Total: len(trace.Steps)}
		if cursor > 0 {
			resp.Step = &trace.Steps[cursor-1]
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}
