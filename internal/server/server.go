// Package server provides the HTTP API for lapwise.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/advisor"
	"github.com/hyperjump/lapwise/internal/config"
	"github.com/hyperjump/lapwise/internal/document"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/fetch"
	"github.com/hyperjump/lapwise/internal/storage"
)

// maxUploadBytes caps multipart spec sheet uploads.
const maxUploadBytes = 10 << 20

// Server is the HTTP server for the lapwise API.
type Server struct {
	advisor   *advisor.Advisor
	store     storage.ComparisonStore
	fetcher   fetch.Fetcher
	extractor *extract.Extractor
	documents *document.Reader
	config    *config.ServerConfig
	logger    *zap.Logger
	server    *http.Server
}

// Option configures optional server collaborators.
type Option func(*Server)

// WithFetcher sets the page fetcher used by the extract endpoint for url-only requests.
func WithFetcher(f fetch.Fetcher) Option {
	return func(s *Server) {
		s.fetcher = f
	}
}

// WithExtractor sets the extractor used by the extract endpoint.
func WithExtractor(e *extract.Extractor) Option {
	return func(s *Server) {
		s.extractor = e
	}
}

// NewServer creates a server with the given dependencies.
func NewServer(
	adv *advisor.Advisor,
	store storage.ComparisonStore,
	cfg *config.ServerConfig,
	logger *zap.Logger,
	opts ...Option,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		advisor: adv,
		store:   store,
		config:  cfg,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = extract.NewExtractor()
	}
	s.documents = document.NewReader(s.extractor)
	return s
}

// Router returns the API routes.
func (s *Server) Router() http.Handler {
	timeout := 60 * time.Second
	if s.config != nil && s.config.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(s.config.RequestTimeoutSeconds) * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compare", s.handleCompare)
		r.Post("/rank", s.handleRank)
		r.Post("/match", s.handleMatch)
		r.Post("/extract", s.handleExtract)
		r.Post("/chat", s.handleChat)
		r.Post("/discover", s.handleDiscover)
		r.Post("/assist", s.handleAssist)
		r.Get("/personas", s.handlePersonas)

		r.Post("/comparisons", s.handleSaveComparison)
		r.Get("/comparisons", s.handleListComparisons)
		r.Get("/comparisons/{id}", s.handleGetComparison)
		r.Delete("/comparisons/{id}", s.handleDeleteComparison)
	})
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
