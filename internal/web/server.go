// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the search page. Every user action (search, clear,
// row click, checkbox toggle, print, download, closing the viewer) is one
// HTTP endpoint that drives the caller's session and answers with an HTML
// fragment the page swaps in place.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/metrics"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// FieldLister returns the searchable fields of the configured dataset.
type FieldLister interface {
	Fields(ctx context.Context) (any, error)
}

// Server wires the session store to a remote searcher.
type Server struct {
	store     *session.Store
	searcher  search.Searcher
	fields    FieldLister
	logger    *zap.Logger
	noticeTTL time.Duration
}

// NewServer returns a Server. fields may be nil, in which case the fields
// endpoint answers 404.
func NewServer(store *session.Store, searcher search.Searcher, fields FieldLister, noticeTTL time.Duration, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if noticeTTL <= 0 {
		noticeTTL = session.DefaultNoticeTTL
	}
	return &Server{
		store:     store,
		searcher:  searcher,
		fields:    fields,
		logger:    logger,
		noticeTTL: noticeTTL,
	}
}

// Routes returns the router with the middleware chain installed.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", s.handleFields)
		r.Post("/search", s.handleAPISearch)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleIndex)
		r.Post("/search", s.handleSearch)
		r.Post("/clear", s.handleClear)
		r.Get("/records/{index}", s.handleRecord)
		r.Delete("/viewer", s.handleCloseViewer)
		r.Post("/selection", s.handleSelectAll)
		r.Post("/selection/{index}", s.handleToggle)
		r.Get("/print", s.handlePrint)
		r.Get("/download", s.handleDownload)
	})

	return r
}
