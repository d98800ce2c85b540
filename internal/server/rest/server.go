// Package rest is the HTTP surface of the gateway: project management
// endpoints for the internal collaborator and the CORS-gated upload
// endpoint for browsers.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/scindn/internal/logging"
	"github.com/dmitrijs2005/scindn/internal/metrics"
	"github.com/dmitrijs2005/scindn/internal/server/cache"
	"github.com/dmitrijs2005/scindn/internal/server/links"
	"github.com/dmitrijs2005/scindn/internal/server/projects"
)

// defaultMaxUploadBytes caps one upload request body.
const defaultMaxUploadBytes = 100 * 1024 * 1024

type Server struct {
	addr           string
	logger         logging.Logger
	service        *projects.Service
	registry       *links.Registry
	cache          *cache.ProjectCache
	metrics        *metrics.Metrics
	jwtSecret      []byte
	staticRoot     string // empty disables static file serving
	maxUploadBytes int64
}

func NewServer(addr string, logger logging.Logger, service *projects.Service,
	registry *links.Registry, c *cache.ProjectCache, m *metrics.Metrics,
	jwtSecret []byte, staticRoot string) *Server {
	return &Server{
		addr:           addr,
		logger:         logger.With("module", "rest"),
		service:        service,
		registry:       registry,
		cache:          c,
		metrics:        m,
		jwtSecret:      jwtSecret,
		staticRoot:     staticRoot,
		maxUploadBytes: defaultMaxUploadBytes,
	}
}

// Router assembles the chi router; separate from Run so tests can drive the
// handler tree directly.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", s.ping)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/project", func(r chi.Router) {
		r.With(s.requireAuth).Post("/create", s.createProject)
		r.Post("/generateLink", s.generateLink)
		r.Post("/delete", s.deleteFile)
	})

	r.Route("/upload/{token}", func(r chi.Router) {
		r.Use(s.corsGate)
		r.Options("/", func(w http.ResponseWriter, _ *http.Request) {
			// Preflight is answered by the gate.
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			// Probing the link applies the origin policy without spending it.
			w.WriteHeader(http.StatusNoContent)
		})
		r.Put("/", s.upload)
	})

	if s.staticRoot != "" {
		fileServer := http.FileServer(http.Dir(s.staticRoot))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
