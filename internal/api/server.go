// Package api exposes the playground surface: a JSON-over-HTTP host that
// lets callers list nodes, inspect their derived fields, fetch mock
// payloads and execute them. It is a thin wrapper over the runner; all
// execution discipline lives in internal/core.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/core"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

type Server struct {
	runner   *core.Runner
	registry ports.Registry
	logger   *slog.Logger
}

func NewServer(runner *core.Runner, registry ports.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		runner:   runner,
		registry: registry,
		logger:   logger.With("component", "api"),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/nodes", s.handleListNodes)
	mux.HandleFunc("GET /api/nodes/{type}/fields", s.handleFields)
	mux.HandleFunc("GET /api/nodes/{type}/mock", s.handleMock)
	mux.HandleFunc("POST /api/nodes/{type}/execute", s.handleExecute)
	return s.logRequests(mux)
}

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"nodes": s.registry.GetAllMetadata(),
	})
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	nodeType := r.PathValue("type")

	fields, err := s.runner.Fields(nodeType)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "unknown node type %q", nodeType)
		return
	}

	example, err := s.runner.ExampleInput(nodeType)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "unknown node type %q", nodeType)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"fields":  fields,
		"example": example,
	})
}

func (s *Server) handleMock(w http.ResponseWriter, r *http.Request) {
	nodeType := r.PathValue("type")

	output, err := s.runner.MockOutput(nodeType)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "unknown node type %q", nodeType)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{"output": output})
}

type executeRequest struct {
	Input               map[string]interface{}       `json:"input"`
	UserID              string                       `json:"user_id"`
	WorkflowExecutionID string                       `json:"workflow_execution_id"`
	Variables           map[string]interface{}       `json:"variables"`
	Credentials         map[string]map[string]string `json:"credentials"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	nodeType := r.PathValue("type")

	var req executeRequest
	if err := xjson.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	result := s.runner.Execute(r.Context(), nodeType, req.Input, core.ExecuteOptions{
		UserID:              req.UserID,
		WorkflowExecutionID: req.WorkflowExecutionID,
		Variables:           req.Variables,
		Credentials:         req.Credentials,
	})

	// Execution outcomes travel in the Result envelope, not the HTTP
	// status: a failed node is still a successful API call.
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := xjson.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, format string, args ...interface{}) {
	s.writeJSON(w, status, domain.Fail(format, args...))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
