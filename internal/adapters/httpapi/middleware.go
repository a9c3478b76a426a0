package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mergington/internal/infrastructure/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// routeLabel collapses request paths into route templates so activity names
// do not blow up metric cardinality.
func routeLabel(path string) string {
	switch {
	case path == "/activities":
		return "/activities"
	case strings.HasPrefix(path, "/activities/") && strings.HasSuffix(path, "/signup"):
		return "/activities/{name}/signup"
	case strings.HasPrefix(path, "/activities/") && strings.HasSuffix(path, "/unregister"):
		return "/activities/{name}/unregister"
	case path == "/healthz", path == "/metrics", path == "/":
		return path
	default:
		return "other"
	}
}
