// Package server is the HTTP surface: profile ingestion, standalone OCR,
// the XLSX export, and liveness.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/export"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
	"github.com/directory-tools/linkedin-ingest/internal/pipeline"
)

// Server wires the handlers to the pipeline and its side services.
type Server struct {
	logger     *slog.Logger
	processor  *pipeline.Processor
	recognizer ocr.Recognizer // nil when Vision is not configured
	exporter   *export.Service
	health     func(ctx context.Context) error
	maxUpload  int64
}

type Options struct {
	Logger     *slog.Logger
	Processor  *pipeline.Processor
	Recognizer ocr.Recognizer
	Exporter   *export.Service
	Health     func(ctx context.Context) error
	MaxUpload  int64
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxUpload <= 0 {
		opts.MaxUpload = 10 << 20
	}
	return &Server{
		logger:     opts.Logger,
		processor:  opts.Processor,
		recognizer: opts.Recognizer,
		exporter:   opts.Exporter,
		health:     opts.Health,
		maxUpload:  opts.MaxUpload,
	}
}

// Router builds the chi router with the middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestContext)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/process-profile", s.handleProcessProfile)
		r.Post("/ocr-pdf", s.handleOCRPDF)
		r.Get("/employees/{id}/experience.xlsx", s.handleExportXLSX)
	})
	return r
}

// withRequestContext carries the chi request id into our own context key
// so every stage logs the same req_id.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if rid := middleware.GetReqID(ctx); rid != "" {
			ctx = common.WithRequestID(ctx, rid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http.request",
			"req_id", common.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unhealthy", "details": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
