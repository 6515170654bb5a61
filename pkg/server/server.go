package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	mw "github.com/vango-dev/slider/pkg/middleware"
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/slider"
	"github.com/vango-dev/slider/pkg/widget"
)

// Server serves the slider page, its fragment and the live patch stream.
type Server struct {
	config *ServerConfig
	router chi.Router

	// WebSocket upgrader
	upgrader websocket.Upgrader

	// HTTP server, set by Serve
	httpServer *http.Server

	logger        *slog.Logger
	metrics       *serverMetrics
	widgetMetrics *widget.Metrics

	// Open sessions, closed on shutdown
	mu       sync.Mutex
	sessions map[*Session]struct{}
	closing  bool
	wg       sync.WaitGroup
}

// New creates a new Server with the given configuration.
func New(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config.applyDefaults()

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:        config.Logger.With("component", "server"),
		metrics:       newServerMetrics(config.Registry),
		widgetMetrics: widget.NewMetrics(widget.WithRegistry(config.Registry)),
		sessions:      make(map[*Session]struct{}),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.OpenTelemetry(mw.WithRequestFilter(traced)))
	r.Use(mw.Prometheus(mw.WithRegistry(s.config.Registry)))
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/slider", s.handleFragment)
	r.Get("/ws", s.HandleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	return r
}

// traced skips the health check and scrape routes.
func traced(r *http.Request) bool {
	return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
}

// logRequests logs every request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// Handler returns the HTTP handler with every route mounted.
func (s *Server) Handler() http.Handler {
	return s.router
}

// newWidget creates an unmounted widget for one page or connection.
func (s *Server) newWidget(state slider.State) *widget.Widget {
	return widget.New(nil, state,
		widget.WithLogger(s.config.Logger),
		widget.WithMetrics(s.widgetMetrics))
}

// requestState is the initial state with query parameter overrides.
func (s *Server) requestState(r *http.Request) (slider.State, error) {
	state := s.config.InitialState
	state.StepPositions = append([]float64(nil), state.StepPositions...)
	change, err := ParseStateChange(r.URL.Query())
	if err != nil || change == nil {
		return state, err
	}
	if err := change.Validate(state); err != nil {
		return state, err
	}
	change.Apply(&state)
	return state, nil
}

// handlePage serves a complete document with the slider and the client.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	state, err := s.requestState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc := s.newWidget(state).Mount(r.Context())

	var buf bytes.Buffer
	renderer := render.NewRenderer(render.RendererConfig{EmitHIDs: true})
	err = renderer.RenderPage(&buf, render.PageData{
		Body:    doc.Root(),
		Title:   s.config.Title,
		Styles:  []string{StyleSheet},
		Scripts: []render.ScriptTag{{Inline: clientScript}},
	})
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.metrics.pages.WithLabelValues("page").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleFragment serves the slider markup alone. ?pretty=1 indents it.
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	state, err := s.requestState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wd := s.newWidget(state)
	wd.Mount(r.Context())

	pretty := r.URL.Query().Get("pretty")
	html, err := wd.HTML(render.RendererConfig{
		EmitHIDs: true,
		Pretty:   pretty != "" && pretty != "0" && pretty != "false",
		Indent:   "  ",
	})
	if err != nil {
		s.logger.Error("fragment render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.metrics.pages.WithLabelValues("fragment").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// HandleWebSocket upgrades the connection, mounts a fresh widget and runs
// the session until the client leaves. ?format=json selects JSON frames.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	state, err := s.requestState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	wd := s.newWidget(state)
	wd.Mount(r.Context())

	sess := &Session{
		conn:       conn,
		widget:     wd,
		config:     s.config,
		logger:     s.logger.With("remote", r.RemoteAddr),
		metrics:    s.metrics,
		jsonFrames: r.URL.Query().Get("format") == "json",
	}
	if !s.track(sess) {
		sess.SendClose(websocket.CloseGoingAway, "server shutting down")
		return
	}
	defer s.untrack(sess)

	s.metrics.connections.Inc()
	defer s.metrics.connections.Dec()

	sess.logger.Debug("session started", "json", sess.jsonFrames)
	sess.ReadLoop(r.Context())
	sess.logger.Debug("session ended")
}

func (s *Server) track(sess *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.sessions[sess] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
	s.wg.Done()
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
	}
	srv := s.httpServer
	s.mu.Unlock()

	// Error channel for Serve
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	// Wait for cancellation or error
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server, waiting at most
// ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	s.closing = true
	sessions := make([]*Session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	srv := s.httpServer
	s.mu.Unlock()

	// Close all sessions first
	for _, sess := range sessions {
		sess.SendClose(websocket.CloseGoingAway, "server shutting down")
	}

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Error("shutdown error", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}
