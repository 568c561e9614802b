package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hexforge/catan-go/internal/metrics"
)

// Metrics creates middleware that records request counts and latencies.
// The path label uses the mux route template so IDs do not explode label
// cardinality.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			collector.RecordRequest(r.Method, routePath(r), wrapped.status, time.Since(start))
		})
	}
}

func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
