package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-multierror"

	"github.com/ziadkadry99/edubot/internal/db"
	"github.com/ziadkadry99/edubot/internal/llm"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool     // allow all CORS origins
	AllowedOrigins []string // used when AllowAll is false
	RequestTimeout time.Duration
	APIKeySet      bool
	AdminKeySet    bool
}

// Models names the two upstream targets for the status endpoints.
type Models struct {
	Primary   llm.Target
	Secondary llm.Target
}

// Server is the edubot HTTP server.
type Server struct {
	cfg         Config
	db          *db.DB
	llmProvider llm.Provider
	models      Models
	log         *slog.Logger

	root       *chi.Mux
	router     chi.Router // root plus the request timeout
	httpServer *http.Server
}

// New creates a new server. llmProvider backs the /test-api probe and may be nil.
func New(cfg Config, database *db.DB, llmProvider llm.Provider, models Models, log *slog.Logger) *Server {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:         cfg,
		db:          database,
		llmProvider: llmProvider,
		models:      models,
		log:         log,
	}

	s.root = s.buildRouter()
	s.router = s.root.With(middleware.Timeout(cfg.RequestTimeout))
	s.registerStatusRoutes(s.router)
	return s
}

// buildRouter creates and configures the chi router. The request timeout
// is left off so streaming routes can run for as long as the client stays.
func (s *Server) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll || len(corsOpts.AllowedOrigins) == 0 {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	return r
}

// Router returns the router for ordinary request/response endpoints.
func (s *Server) Router() chi.Router { return s.router }

// StreamRouter returns the router without a request timeout, for SSE endpoints.
func (s *Server) StreamRouter() chi.Router { return s.root }

// Handler returns the root handler serving every registered route.
func (s *Server) Handler() http.Handler { return s.root }

// Start begins listening on the configured port. It returns nil after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("edubot server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("closing database: %w", err))
		}
	}
	s.log.Info("backend shutting down")
	return result.ErrorOrNil()
}
