package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/slider/pkg/slider"
)

// ServerConfig holds configuration for the Server.
type ServerConfig struct {
	// Address is the address to listen on (e.g., ":3000").
	Address string

	// Title is the page title of GET /.
	Title string

	// InitialState is the state every new widget starts from.
	InitialState slider.State

	// ReadBufferSize is the WebSocket read buffer size.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	WriteBufferSize int

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 4KB.
	MaxMessageSize int64

	// CheckOrigin is called to validate the request origin of /ws.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// ReadHeaderTimeout, ReadTimeout and WriteTimeout configure the HTTP
	// server. WriteTimeout also bounds every WebSocket write.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration

	// IdleTimeout closes a WebSocket that sends nothing for this long.
	// Default: 5 minutes.
	IdleTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration

	// Registry receives the server and widget metrics and backs /metrics.
	// Default: a fresh prometheus.Registry.
	Registry *prometheus.Registry

	// Logger is the base logger (default: slog.Default()).
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
//
// SECURITY: CheckOrigin enforces same-origin by default to prevent
// cross-site WebSocket hijacking.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":3000",
		Title:             "Slider",
		InitialState:      slider.DefaultState(),
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		MaxMessageSize:    4 * 1024,
		CheckOrigin:       SameOriginCheck,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       5 * time.Minute,
		ShutdownTimeout:   5 * time.Second,
	}
}

// applyDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) applyDefaults() {
	d := DefaultServerConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.InitialState.Orientation == "" {
		c.InitialState.Orientation = slider.Horizontal
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// SameOriginCheck validates that the Origin header matches the Host.
// This is the secure default for CheckOrigin.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No Origin header (e.g., same-origin request or curl)
		return true
	}

	// Parse origin as URL for robust comparison
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := r.Host
	if host == "" {
		return false
	}

	// Compare the host portion (includes port if present)
	return originURL.Host == host
}

// AllowOrigins returns a CheckOrigin func accepting same-origin requests and
// the listed origins. A "*" entry accepts every origin.
func AllowOrigins(origins []string) func(*http.Request) bool {
	if len(origins) == 0 {
		return SameOriginCheck
	}
	if slices.Contains(origins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		if SameOriginCheck(r) {
			return true
		}
		return slices.Contains(origins, r.Header.Get("Origin"))
	}
}
