// Package http exposes the view-python engine as a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Pulkit12dhingra/view-python/internal/notebook"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
	"github.com/Pulkit12dhingra/view-python/pkg/observability"
	"github.com/Pulkit12dhingra/view-python/pkg/ports"
)

// maxUploadBytes caps notebook uploads.
const maxUploadBytes = 16 << 20

// Engine defines the interface for the view-python core.
type Engine interface {
	BuildGraph(cells []string) domain.Graph
	RunGraph(nodes []domain.Node, edges []domain.Edge) domain.GraphRunResult
	RunCells(cells []string) domain.LinearRunResult
}

// Server wires the engine and its collaborators into HTTP handlers.
type Server struct {
	Engine  Engine
	Store   ports.NotebookStore
	Metrics *observability.Metrics

	frontendDir string
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables the notebook upload/listing endpoints.
func WithStore(store ports.NotebookStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithMetrics enables the /metrics endpoint and request counting.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Server) {
		s.Metrics = metrics
	}
}

// WithFrontend serves the static UI from dir ("/" and "/static/*").
func WithFrontend(dir string) Option {
	return func(s *Server) {
		s.frontendDir = dir
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(server.countRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/graph", server.BuildGraph)
		r.Post("/run", server.RunLinear)
		r.Post("/run-graph", server.RunGraph)

		if server.Store != nil {
			r.Post("/upload", server.Upload)
			r.Get("/notebooks", server.ListNotebooks)
			r.Get("/notebooks/{id}", server.GetNotebook)
			r.Delete("/notebooks/{id}", server.DeleteNotebook)
		}
	})

	r.Get("/health", server.GetHealth)
	r.Handle("/metrics", server.Metrics.Handler())

	if server.frontendDir != "" {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(server.frontendDir, "index.html"))
		})
		r.Handle("/static/*", http.StripPrefix("/static/",
			http.FileServer(http.Dir(server.frontendDir))))
	}

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

// countRequests records per-route request counts. No-op without metrics.
// The route label is the chi pattern, not the raw path, so parameterized
// routes stay at one label value instead of one per id.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		s.Metrics.HTTPRequest(r.Method, route, rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// CellsRequest is the payload for graph building and linear runs.
type CellsRequest struct {
	Cells []string `json:"cells"`
}

// BuildGraph handles the POST /api/graph request.
func (s *Server) BuildGraph(w http.ResponseWriter, r *http.Request) {
	var body CellsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("BuildGraph: Invalid request body", "err", err)
		return
	}

	writeJSON(w, s.Engine.BuildGraph(body.Cells))
}

// RunLinear handles the POST /api/run request (legacy linear mode).
func (s *Server) RunLinear(w http.ResponseWriter, r *http.Request) {
	var body CellsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("RunLinear: Invalid request body", "err", err)
		return
	}

	writeJSON(w, s.Engine.RunCells(body.Cells))
}

// RunGraph handles the POST /api/run-graph request. The graph may be the
// auto-built one or a user-edited variant; inconsistencies are tolerated.
func (s *Server) RunGraph(w http.ResponseWriter, r *http.Request) {
	var body domain.Graph
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("RunGraph: Invalid request body", "err", err)
		return
	}

	writeJSON(w, s.Engine.RunGraph(body.Nodes, body.Edges))
}

// UploadResponse is the payload returned for a stored notebook.
type UploadResponse struct {
	ID       string       `json:"id"`
	Filename string       `json:"filename"`
	Graph    domain.Graph `json:"graph"`
}

// Upload handles the POST /api/upload request (multipart .ipynb).
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	f, header, err := r.FormFile("nb")
	if err != nil {
		http.Error(w, "Missing notebook file field 'nb'", http.StatusBadRequest)
		return
	}
	defer f.Close()

	if !strings.HasSuffix(header.Filename, ".ipynb") {
		writeJSONStatus(w, http.StatusBadRequest, map[string]string{
			"error": "Please upload a .ipynb file",
		})
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	doc, err := notebook.Parse(data)
	if err != nil {
		writeJSONStatus(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid notebook: %v", err),
		})
		return
	}

	nb := &domain.Notebook{
		ID:        uuid.NewString(),
		Filename:  header.Filename,
		Cells:     doc.CodeCells(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Save(r.Context(), nb); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("Upload: Save failed", "err", err)
		return
	}

	writeJSON(w, UploadResponse{
		ID:       nb.ID,
		Filename: nb.Filename,
		Graph:    s.Engine.BuildGraph(nb.Cells),
	})
}

// ListNotebooks handles the GET /api/notebooks request.
func (s *Server) ListNotebooks(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("ListNotebooks failed", "err", err)
		return
	}
	writeJSON(w, map[string][]string{"notebooks": ids})
}

// GetNotebook handles the GET /api/notebooks/{id} request. The dependency
// graph is rebuilt from the stored cells rather than persisted.
func (s *Server) GetNotebook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	nb, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotebookNotFound) {
			http.Error(w, "Notebook not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("GetNotebook failed", "err", err)
		return
	}

	writeJSON(w, UploadResponse{
		ID:       nb.ID,
		Filename: nb.Filename,
		Graph:    s.Engine.BuildGraph(nb.Cells),
	})
}

// DeleteNotebook handles the DELETE /api/notebooks/{id} request.
func (s *Server) DeleteNotebook(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("DeleteNotebook failed", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "err", err)
	}
}
