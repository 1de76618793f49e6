// Package httpapi is the read-only HTTP boundary adapter for external UI
// collaborators: it exposes the SP catalogs, the calculation, and per-field
// explanations as JSON. All state lives in the request; the server holds only
// the type registry and configuration.
package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/adcworks/adcsetup/internal/config"
	"github.com/adcworks/adcsetup/internal/metrics"
	"github.com/adcworks/adcsetup/internal/setupparam"
)

// Server serves the setup-parameter API.
type Server struct {
	router   *mux.Router
	server   *http.Server
	registry *setupparam.TypeRegistry
	cfg      *config.Config
	metrics  *metrics.Registry
	limiter  *clientLimiter
}

// NewServer wires routes, middleware, and metrics for the given registry.
func NewServer(cfg *config.Config, registry *setupparam.TypeRegistry, m *metrics.Registry) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if m == nil {
		m = metrics.NewRegistry()
	}

	s := &Server{
		router:   mux.NewRouter(),
		registry: registry,
		cfg:      cfg,
		metrics:  m,
		limiter:  newClientLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}
	return s
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler { return s.router }

// Address returns the listen address.
func (s *Server) Address() string { return s.server.Addr }

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(s.timeoutMiddleware)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/").Subrouter()
	api.Use(s.jsonContentTypeMiddleware)

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/v1/setupparams", s.handleTypes).Methods(http.MethodGet)
	api.HandleFunc("/v1/setupparams/{type}/fields", s.handleFields).Methods(http.MethodGet)
	api.HandleFunc("/v1/setupparams/{type}/calculate", s.handleCalculate).Methods(http.MethodPost)
	api.HandleFunc("/v1/setupparams/{type}/explain/{key}", s.handleExplain).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("setup-parameter API listening")
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down setup-parameter API")
	return s.server.Shutdown(ctx)
}
