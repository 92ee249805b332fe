// Package server serves the site over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/graphul-rs/website/internal/config"
	"github.com/graphul-rs/website/internal/pages"
	"github.com/graphul-rs/website/internal/site"
	"github.com/graphul-rs/website/internal/telemetry"
	"github.com/graphul-rs/website/internal/view"
)

// Server renders the site's pages and serves its static assets.
type Server struct {
	cfg     config.HTTPConfig
	metrics config.MetricsConfig
	site    *site.Site
	static  fs.FS
	log     *slog.Logger
	telem   *telemetry.Metrics
	handler http.Handler
}

// New returns a Server for s, serving static under /static/.
func New(cfg *config.Config, s *site.Site, static fs.FS, logger *slog.Logger, metrics *telemetry.Metrics) *Server {
	srv := &Server{
		cfg:     cfg.HTTP,
		metrics: cfg.Metrics,
		site:    s,
		static:  static,
		log:     logger,
		telem:   metrics,
	}
	srv.handler = srv.routes()
	return srv
}

// Handler returns the Server's root http.Handler, with all middleware
// applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s.telem.Wrap("home", http.HandlerFunc(s.handleHome)))
	mux.Handle("GET /static/", s.telem.Wrap("static", http.StripPrefix("/static/", http.FileServerFS(s.static))))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics.Enabled {
		mux.Handle("GET "+s.metrics.Path, s.telem.Handler())
	}
	mux.Handle("/", s.telem.Wrap("not_found", http.HandlerFunc(s.handleNotFound)))
	return requestID(s.logRequests(mux))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, s, http.StatusOK, pages.NewHome())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, s, http.StatusNotFound, pages.NewNotFound())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderPage renders page into a buffer before writing anything, so a failed
// render can still be answered with a 500 and the server error page.
func renderPage[PageType view.Page](w http.ResponseWriter, r *http.Request, s *Server, status int, page PageType) {
	ctx := r.Context()
	var buf bytes.Buffer
	err := view.Execute(ctx, &buf, s.site, page)
	if err != nil {
		pageName := fmt.Sprintf("%T", page)
		view.Logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "page", pageName)
		s.telem.RenderFailed(pageName)
		status = http.StatusInternalServerError
		buf.Reset()
		view.Render(ctx, &buf, s.site, s.site.ServerErrorPage(ctx))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, err = w.Write(buf.Bytes())
	if err != nil {
		view.Logger(ctx).DebugContext(ctx, "error writing response", "error", err)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully,
// waiting up to the configured shutdown timeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %q: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe, but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errs := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "serving", "addr", ln.Addr().String())
		errs <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving: %w", err)
	case <-ctx.Done():
	}

	s.log.InfoContext(ctx, "shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("error shutting down: %w", err)
	}
	err = <-errs
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error serving: %w", err)
	}
	return nil
}
