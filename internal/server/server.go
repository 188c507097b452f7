package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/internal/showcase"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/middleware"
)

const (
	// SessionCookie names the cookie holding the builder session id.
	SessionCookie = "featuregrid_session"

	// ShowcaseCookie names the cookie holding the showcase session id.
	ShowcaseCookie = "featuregrid_showcase"
)

// Server is the HTTP and WebSocket surface of the builder.
type Server struct {
	cfg      *config.Config
	cat      *catalog.Catalog
	resolver *cards.Resolver

	sessions  *SessionManager
	showcases *SessionManager
	upgrader  websocket.Upgrader
	router   chi.Router

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracing  *middleware.Tracing

	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics sets the metrics and the gatherer served on /metrics.
func WithMetrics(m *middleware.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithTracing sets the tracing middleware.
func WithTracing(t *middleware.Tracing) Option {
	return func(s *Server) {
		s.tracing = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server for cat. Cards are rendered through resolver.
//
// Without WithMetrics the server records into a private registry, so
// several servers can coexist in one process.
func New(cfg *config.Config, cat *catalog.Catalog, resolver *cards.Resolver, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		cat:      cat,
		resolver: resolver,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")

	if s.metrics == nil {
		reg := prometheus.NewRegistry()
		s.metrics = middleware.NewMetrics(middleware.WithRegistry(reg))
		s.gatherer = reg
	}
	if s.tracing == nil {
		s.tracing = middleware.NewTracing()
	}

	s.sessions = NewSessionManager(s.newBuilder, cfg.Server.MaxSessions, cfg.SessionTTL(), s.logger)
	s.showcases = NewSessionManager(s.newShowcase, cfg.Server.MaxSessions, cfg.SessionTTL(), s.logger.With("screen", "showcase"))
	for _, sm := range []*SessionManager{s.sessions, s.showcases} {
		sm.SetOnSessionCreate(func(*Session) { s.metrics.SessionOpened() })
		sm.SetOnSessionClose(func(*Session) { s.metrics.SessionClosed() })
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}

	s.router = s.routes()
	return s
}

func (s *Server) newBuilder() (Screen, error) {
	b, err := builder.New(s.cat, s.resolver,
		builder.WithDefaults(s.cfg.Builder),
		builder.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Server) newShowcase() (Screen, error) {
	sc, err := showcase.New(s.cat, s.resolver, showcase.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.tracing.Handler)
	r.Use(s.requestLogger)
	r.Use(s.metrics.Handler)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.HandleWebSocket)
	r.Get("/showcase", s.handleShowcase)
	r.Get("/showcase/ws", s.handleShowcaseSocket)
	r.Route("/api", func(r chi.Router) {
		r.Post("/actions", s.handleAction)
		r.Get("/catalog", s.handleCatalog)
	})
	r.Get("/cards/{category}/{name}", s.handleCard)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions returns the builder session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Showcases returns the showcase session manager.
func (s *Server) Showcases() *SessionManager {
	return s.showcases
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return errors.New("E506").WithDetailf("listen on %s", s.cfg.Address()).Wrap(err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.cfg.ReadTimeout(),
		ReadTimeout:       s.cfg.ReadTimeout(),
		WriteTimeout:      s.cfg.WriteTimeout(),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, s.cfg.SweepInterval())
	go s.showcases.Run(sweepCtx, s.cfg.SweepInterval())

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("E506").Wrap(err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
		defer cancel()

		s.sessions.Shutdown()
		s.showcases.Shutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}

// checkOrigin accepts same-host origins and the configured extras.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	return slices.Contains(s.cfg.Server.AllowedOrigins, origin)
}

// requestLogger logs one line per request at info, or warn for 5xx.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
