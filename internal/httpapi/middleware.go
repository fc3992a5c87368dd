package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ecadtemp-server/internal/observability"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func requestLogger(metrics *observability.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		// The mux fills in r.Pattern during dispatch; it stays empty when
		// no registered pattern matched the request.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sr.status)).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", sr.status,
			"duration_ms", duration.Milliseconds(),
			"request_id", requestID,
		)
	})
}
