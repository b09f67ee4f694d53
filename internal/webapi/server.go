// Package webapi exposes the converter over HTTP. It accepts multipart
// uploads, runs conversions synchronously, and serves the produced
// documents back to the caller. Jobs are tracked in memory only.
package webapi

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phuslu/log"
)

// defaultMaxUpload caps the whole multipart request body.
const defaultMaxUpload = 100 << 20 // 100 MB

// Config carries the dependencies a Server needs. Zero values are
// replaced with working defaults by NewServer.
type Config struct {
	// Logger receives request and conversion logs.
	Logger log.Logger

	// Convert runs a conversion request. Defaults to DefaultConvert,
	// which runs the real pipeline; tests inject a stub.
	Convert ConvertFunc

	// WorkDir is where job scratch directories are created. Defaults
	// to the system temp directory.
	WorkDir string

	// MaxUpload caps the request body size in bytes.
	MaxUpload int64
}

// Server handles conversion requests over HTTP.
type Server struct {
	logger    log.Logger
	convert   ConvertFunc
	jobs      *jobStore
	workDir   string
	maxUpload int64
}

// NewServer builds a Server from cfg, filling in defaults for any
// dependency left unset.
func NewServer(cfg Config) *Server {
	if cfg.Convert == nil {
		cfg.Convert = DefaultConvert
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = defaultMaxUpload
	}
	if cfg.Logger.Writer == nil {
		cfg.Logger.Writer = &log.IOWriter{Writer: os.Stderr}
	}
	return &Server{
		logger:    cfg.Logger,
		convert:   cfg.Convert,
		jobs:      newJobStore(),
		workDir:   cfg.WorkDir,
		maxUpload: cfg.MaxUpload,
	}
}

// Router returns the HTTP handler tree for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/jobs/{id}", s.handleJobStatus)
		r.Get("/jobs/{id}/download", s.handleDownload)
	})
	return r
}

// logRequests writes one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("duration", time.Since(start).String()).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
