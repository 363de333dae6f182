// Package server exposes workspace audit results over HTTP.
//
// The server rescans the workspace on demand and caches serialized
// results (through pkg/cache) so repeated requests do not hammer the
// file system on large trees.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cargoscope/pkg/cache"
	"github.com/matzehuels/cargoscope/pkg/graph"
	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// Server serves audit results for one workspace root.
type Server struct {
	root   string
	opts   workspace.Options
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// New creates a server. A nil cache disables caching; a nil logger uses
// the default.
func New(root string, opts workspace.Options, c cache.Cache, ttl time.Duration, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{root: root, opts: opts, cache: c, ttl: ttl, logger: logger}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/api/report", s.handleReport)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "root", s.root)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	key := cache.Key("graph", s.root, s.opts.Manifest)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	reg, err := workspace.Build(s.root, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := graph.Marshal(graph.FromRegistry(reg))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("cache set failed", "key", key, "err", err)
	}
	writeRawJSON(w, http.StatusOK, data)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	key := cache.Key("report", s.root, s.opts.Manifest)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	reg, err := workspace.Build(s.root, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := json.Marshal(buildReport(reg))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("cache set failed", "key", key, "err", err)
	}
	writeRawJSON(w, http.StatusOK, data)
}

// Report is the JSON shape of /api/report.
type Report struct {
	Unused          []string       `json:"unused"`
	SingleConsumers []ConsumerPair `json:"single_consumers"`
}

// ConsumerPair names a project and its sole dependent.
type ConsumerPair struct {
	Project   string `json:"project"`
	Dependent string `json:"dependent"`
}

func buildReport(reg *workspace.Registry) Report {
	rep := Report{Unused: []string{}, SingleConsumers: []ConsumerPair{}}
	for _, p := range reg.Unused() {
		rep.Unused = append(rep.Unused, p.Dir)
	}
	for _, c := range reg.SingleConsumers() {
		rep.SingleConsumers = append(rep.SingleConsumers, ConsumerPair{
			Project:   c.Project.Dir,
			Dependent: c.Dependent.Dir,
		})
	}
	return rep
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, workspace.ErrUnknownDependency) {
		// The workspace itself is inconsistent, not the server.
		status = http.StatusUnprocessableEntity
	}
	s.logger.Error("request failed", "err", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
