package rest

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/pkg/clock"
	"github.com/KirkDiggler/hexpath/internal/repositories/ratelimit"
)

// HeaderRequestID carries the request ID in and out
const HeaderRequestID = "X-Request-ID"

type contextKey int

const requestIDKey contextKey = iota

// RequestID returns the request ID stored by the server middleware
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = s.idGen.Generate()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusRecorder captures the response status for the access log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Hijack lets websocket upgrades through the recorder
func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.Internal("response writer does not support hijacking")
	}
	rec.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.InfoContext(r.Context(), "http request",
			"request_id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", clientIP(r, s.trustForwarded),
			"elapsed", time.Since(start),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderRequestID)
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	return s.origins["*"] || s.origins[origin]
}

// rateLimitMiddleware rejects clients over the window limit with 429. When
// the counter store fails the request is let through.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	if s.rateLimit == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit, err := s.rateLimit.Hit(r.Context(), ratelimit.HitInput{
			Key:    clientIP(r, s.trustForwarded),
			Window: s.window,
		})
		if err != nil {
			s.logger.WarnContext(r.Context(), "rate limit store failed, allowing request",
				"request_id", RequestID(r.Context()),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		if hit.Count > int64(s.limit) {
			s.metrics.ObserveRateLimited()
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter(clock.Until(s.clock, hit.ResetAt))))
			writeError(w, errors.ResourceExhausted("rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// retryAfter rounds the wait up to whole seconds, at least 1
func retryAfter(wait time.Duration) int {
	seconds := int((wait + time.Second - 1) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

// clientIP returns the peer address, or the first X-Forwarded-For entry when
// the server sits behind a trusted proxy
func clientIP(r *http.Request, trustForwarded bool) string {
	if xff := r.Header.Get("X-Forwarded-For"); trustForwarded && xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
