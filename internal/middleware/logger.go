package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

var skipLogPaths = map[string]bool{
	"/api/health":  true,
	"/metrics":     true,
	"/favicon.ico": true,
}

// Logger writes one structured log line per request
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipLogPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"latency_ms", elapsed.Milliseconds(),
				"client_ip", r.RemoteAddr,
			}
			if id := GetRequestID(r.Context()); id != "" {
				fields = append(fields, "request_id", id)
			}
			if r.URL.RawQuery != "" {
				fields = append(fields, "query", r.URL.RawQuery)
			}

			switch {
			case sw.status >= 500:
				logger.Error("server error", fields...)
			case sw.status >= 400:
				logger.Warn("client error", fields...)
			default:
				logger.Info("request handled", fields...)
			}
		})
	}
}
