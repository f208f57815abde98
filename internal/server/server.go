// Package server exposes the renderer as a service: an HTTP endpoint
// for network callers and a framed stdio mode for host processes that
// embed aasvg behind a byte pipe.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/asciidiag/aasvg/pkg/cache"
	"github.com/asciidiag/aasvg/pkg/diagram"
	aaerrors "github.com/asciidiag/aasvg/pkg/errors"
	"github.com/asciidiag/aasvg/pkg/observability"
)

// maxBodySize bounds a render request body.
const maxBodySize = 10 << 20

// Server renders diagrams over HTTP, caching results by input hash.
// Render is referentially transparent, so a cached response is always
// exact.
type Server struct {
	log   *log.Logger
	cache cache.Cache
	ttl   time.Duration
}

// New builds a Server. A nil cache disables caching.
func New(logger *log.Logger, c cache.Cache, ttl time.Duration) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{log: logger, cache: c, ttl: ttl}
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.log.Infof("Listening on %s", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		http.Error(w, "read request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxBodySize {
		err := aaerrors.New(aaerrors.ErrCodeInputTooLarge, "diagram exceeds %d bytes", maxBodySize)
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	var opts []diagram.Option
	var optKeys []string
	if boolParam(r, "backdrop") {
		opts = append(opts, diagram.WithBackdrop())
		optKeys = append(optKeys, "backdrop")
	}
	if boolParam(r, "notext") {
		opts = append(opts, diagram.WithoutText())
		optKeys = append(optKeys, "notext")
	}

	src := string(body)
	key := cache.Key(src, optKeys...)

	if svg, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		observability.Cache().OnCacheHit(r.Context(), key)
		writeSVG(w, svg, true)
		return
	} else if err != nil {
		s.log.Warnf("cache get: %v", err)
	}
	observability.Cache().OnCacheMiss(r.Context(), key)

	observability.Render().OnRenderStart(r.Context(), len(src))
	start := time.Now()
	svg := []byte(diagram.Render(src, opts...))
	observability.Render().OnRenderComplete(r.Context(), len(svg), time.Since(start))

	if err := s.cache.Set(r.Context(), key, svg, s.ttl); err != nil {
		s.log.Warnf("cache set: %v", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), key, len(svg))
	}
	writeSVG(w, svg, false)
}

func writeSVG(w http.ResponseWriter, svg []byte, cached bool) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func boolParam(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags every request with a UUID, echoed in X-Request-ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs one line per request with its ID and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(requestIDKey).(string)
		s.log.Debugf("%s %s (%s) request_id=%s",
			r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond), id)
	})
}
