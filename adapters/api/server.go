// Package api exposes the latest profiling snapshot over HTTP. All routes
// are read-only consumers of the derived statistics.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cleantab/internal"
	"cleantab/internal/profiling"
	"cleantab/internal/report"
)

// Server serves profiling results for one profiled dataset
type Server struct {
	profile *profiling.TableProfile
	name    string
	logger  *internal.Logger
}

// NewServer creates a new read-only API server over a profile
func NewServer(p *profiling.TableProfile, datasetName string, logger *internal.Logger) *Server {
	return &Server{profile: p, name: datasetName, logger: logger}
}

// Router builds the route tree
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/profile", s.handleProfile)
	r.Get("/report", s.handleReport)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	payload := map[string]interface{}{
		"dataset":  s.name,
		"snapshot": s.profile.Snapshot(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode profile response: %v", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	html := report.RenderHTML(s.profile.Table(), s.profile.Snapshot())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(html); err != nil {
		s.logger.Error("failed to write report response: %v", err)
	}
}
