// Package rest serves path requests over HTTP/JSON and WebSocket
package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/metrics"
	"github.com/KirkDiggler/hexpath/internal/orchestrators/pathfinding"
	"github.com/KirkDiggler/hexpath/internal/pkg/clock"
	"github.com/KirkDiggler/hexpath/internal/pkg/idgen"
	"github.com/KirkDiggler/hexpath/internal/repositories/ratelimit"
)

// Config holds the dependencies for the HTTP server
type Config struct {
	PathfindingService pathfinding.Service

	// RateLimitRepo counts requests per client. Nil disables rate limiting.
	RateLimitRepo ratelimit.Repository
	RateLimit     int
	Window        time.Duration

	// TrustForwardedFor keys clients by X-Forwarded-For. Enable only behind
	// a proxy that overwrites the header.
	TrustForwardedFor bool

	// CORSOrigins lists allowed origins; "*" allows any
	CORSOrigins []string

	// Gatherer backs GET /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
	Metrics  *metrics.Metrics

	IDGenerator idgen.Generator
	// Clock dates Retry-After; nil means the system clock
	Clock  clock.Clock
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PathfindingService == nil {
		vb.RequiredField("PathfindingService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RateLimitRepo != nil {
		errors.ValidatePositive("RateLimit", c.RateLimit, vb)
		if c.Window <= 0 {
			vb.InvalidField("Window", "must be positive")
		}
	}
	return vb.Build()
}

// Server routes HTTP requests to the pathfinding service
type Server struct {
	service        pathfinding.Service
	rateLimit      ratelimit.Repository
	limit          int
	window         time.Duration
	trustForwarded bool
	origins        map[string]bool
	gatherer       prometheus.Gatherer
	metrics        *metrics.Metrics
	idGen          idgen.Generator
	clock          clock.Clock
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with the provided dependencies
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	origins := make(map[string]bool, len(cfg.CORSOrigins))
	for _, origin := range cfg.CORSOrigins {
		origins[origin] = true
	}

	return &Server{
		service:        cfg.PathfindingService,
		rateLimit:      cfg.RateLimitRepo,
		limit:          cfg.RateLimit,
		window:         cfg.Window,
		trustForwarded: cfg.TrustForwardedFor,
		origins:        origins,
		gatherer:       cfg.Gatherer,
		metrics:        cfg.Metrics,
		idGen:          cfg.IDGenerator,
		clock:          clk,
		logger:         logger,
	}, nil
}

// Handler returns the routed handler wrapped in middleware. Rate limiting
// covers the /api routes only.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/{requestType}", s.handleFindPath)
	api.HandleFunc("GET /api/ws", s.handleWebSocket)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	mux.Handle("/api/", s.rateLimitMiddleware(api))

	return s.requestIDMiddleware(s.accessLogMiddleware(s.corsMiddleware(mux)))
}
