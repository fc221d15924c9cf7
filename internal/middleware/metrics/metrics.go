// Package metrics records Prometheus HTTP metrics for the archive API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archivo_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	// Most routes answer from one indexed query; the tail is multipart
	// uploads, so the buckets stretch well past typical JSON latencies.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "archivo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .025, .1, .5, 2.5, 10},
		},
		[]string{"method", "route"},
	)

	// Response sizes are bimodal: small JSON bodies and multi-megabyte
	// images off /uploads.
	responseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "archivo_http_response_size_bytes",
			Help:    "HTTP response body size in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
		[]string{"method", "route"},
	)

	inFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "archivo_http_requests_in_flight",
			Help: "HTTP requests currently being processed",
		},
	)
)

// observer wraps http.ResponseWriter to capture status and bytes written.
type observer struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (o *observer) WriteHeader(code int) {
	o.status = code
	o.ResponseWriter.WriteHeader(code)
}

func (o *observer) Write(p []byte) (int, error) {
	n, err := o.ResponseWriter.Write(p)
	o.bytes += int64(n)
	return n, err
}

// Middleware records per-request metrics, labeled by chi route pattern so
// /api/board/{id} stays one series regardless of id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		obs := &observer{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(obs, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		requestCount.WithLabelValues(r.Method, route, strconv.Itoa(obs.status)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		responseSize.WithLabelValues(r.Method, route).Observe(float64(obs.bytes))
	})
}
