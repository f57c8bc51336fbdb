package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elaraai/east-ui-sub007/pkg/dataset"
	"github.com/elaraai/east-ui-sub007/pkg/render"
)

// Server exposes a dataset cache and component rendering over HTTP.
// Dataset content lives under /workspaces/{workspace}/datasets/{path},
// change events stream over the /watch WebSocket.
type Server struct {
	cache    *dataset.Cache
	renderer *render.Renderer
	config   *Config
	registry *prometheus.Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger

	httpServer *http.Server
	router     chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithRenderer sets the renderer used by the demo page endpoint.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Server) {
		s.renderer = r
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry serves /metrics from the given registry instead of the
// process-wide default.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// New creates a server over the given cache.
// A nil config uses defaults; unset fields are filled in.
func New(cache *dataset.Cache, config *Config, opts ...Option) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.Address == "" {
			config.Address = defaults.Address
		}
		if config.ReadBufferSize == 0 {
			config.ReadBufferSize = defaults.ReadBufferSize
		}
		if config.WriteBufferSize == 0 {
			config.WriteBufferSize = defaults.WriteBufferSize
		}
		if config.CheckOrigin == nil {
			config.CheckOrigin = defaults.CheckOrigin
		}
		if config.HeartbeatInterval == 0 {
			config.HeartbeatInterval = defaults.HeartbeatInterval
		}
		if config.WatchWriteTimeout == 0 {
			config.WatchWriteTimeout = defaults.WatchWriteTimeout
		}
		if config.WatchReadTimeout == 0 {
			config.WatchReadTimeout = defaults.WatchReadTimeout
		}
		if config.DefaultPollInterval == 0 {
			config.DefaultPollInterval = defaults.DefaultPollInterval
		}
		if config.MaxDatasetSize == 0 {
			config.MaxDatasetSize = defaults.MaxDatasetSize
		}
		if config.ShutdownTimeout == 0 {
			config.ShutdownTimeout = defaults.ShutdownTimeout
		}
		if config.ReadHeaderTimeout == 0 {
			config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
		}
	}

	s := &Server{
		cache:    cache,
		renderer: render.NewRenderer(render.RendererConfig{}),
		config:   config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	metricsHandler := promhttp.Handler()
	if s.registry != nil {
		metricsHandler = promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	}
	r.Handle("/metrics", metricsHandler)

	r.Route("/workspaces/{workspace}/datasets", func(r chi.Router) {
		r.Get("/*", s.handleGetDataset)
		r.Put("/*", s.handlePutDataset)
		r.Delete("/*", s.handleDeleteDataset)
	})

	r.Get("/watch", s.handleWatch)
	r.Get("/render", s.handleDemoPage)

	return r
}

// Handler returns the server's http.Handler for mounting in external routers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server and closes the cache.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	if err := s.cache.Close(); err != nil {
		s.logger.Error("cache close error", "error", err)
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Cache returns the server's dataset cache.
func (s *Server) Cache() *dataset.Cache {
	return s.cache
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
