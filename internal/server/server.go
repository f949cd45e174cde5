// Package server exposes axis rendering over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness check
//	GET  /v1/axis.{svg,png,json}  render from query parameters
//	POST /v1/axis?type=svg        render from a TOML axis file in the body
//
// Query parameters mirror the CLI flags of "axis2d render": min, max,
// labels, format, title, p1, p2, width, height, adjust, hide.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/axis2d/pkg/cache"
	"github.com/matzehuels/axis2d/pkg/config"
	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/observability"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/axis/sink"
)

// maxBody bounds POSTed axis files.
const maxBody = 64 << 10

// Server renders axes on request.
type Server struct {
	cache  cache.Cache
	logger *log.Logger
	ttl    time.Duration
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the artifact cache. The default stores nothing.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTTL sets how long rendered artifacts stay cached.
func WithTTL(d time.Duration) Option {
	return func(s *Server) { s.ttl = d }
}

// New builds a server and its routes.
func New(opts ...Option) *Server {
	s := &Server{
		cache:  cache.NewNullCache(),
		logger: log.Default(),
		ttl:    cache.DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/axis.{type}", s.handleGet)
		r.Post("/axis", s.handlePost)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "type")
	f, err := parseQuery(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, f, format)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("type")
	if format == "" {
		format = sink.FormatSVG
	}
	f, err := config.Decode(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, f, format)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, f config.File, format string) {
	if err := errors.ValidateOutputFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}
	ctx := r.Context()
	key := cache.ArtifactKey(f, f.Viewport.Width, f.Viewport.Height, format)
	etag := `"` + cache.Hash([]byte(key))[:16] + `"`
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", "err", err, "request_id", requestIDFrom(ctx))
	}
	if !hit {
		a := axis.NewFromSpec(f.Axis, nil, axis.WithLogger(s.logger))
		data, err = sink.Render(a, f.Viewport.Fixed(), format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("cache store failed", "err", err, "request_id", requestIDFrom(ctx))
		}
	}

	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set("ETag", etag)
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	_, _ = w.Write(data)
}

// etagMatches reports whether an If-None-Match header names etag. Weak
// validators match their strong form.
func etagMatches(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
		if tag == "*" || tag == etag {
			return true
		}
	}
	return false
}

type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case code == "":
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("render failed", "err", err, "request_id", requestIDFrom(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     string(code),
		Message:   errors.UserMessage(err),
		RequestID: requestIDFrom(r.Context()),
	})
}
