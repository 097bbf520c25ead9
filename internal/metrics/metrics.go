// Package metrics exposes the Prometheus collectors of the service.
// All recording methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockseblock"

// Metrics holds all Prometheus collectors and the registry they are registered with
type Metrics struct {
	registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	videosUploaded   prometheus.Counter
	uploadedBytes    prometheus.Counter
	tokensCredited   *prometheus.CounterVec
	redemptions      *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, together with the Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds, by route, method and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		videosUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "videos_uploaded_total",
			Help:      "Total videos stored.",
		}),
		uploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "video_upload_bytes_total",
			Help:      "Total bytes of stored videos.",
		}),
		tokensCredited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_credited_total",
				Help:      "Total tokens credited to learners, by reward kind.",
			},
			[]string{"kind"},
		),
		redemptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_redemptions_total",
				Help:      "Total store redemptions, by item category.",
			},
			[]string{"category"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestsInFlight,
		m.videosUploaded,
		m.uploadedBytes,
		m.tokensCredited,
		m.redemptions,
	)
	return m
}

// Handler serves the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// VideoUploaded records a stored upload of the given size
func (m *Metrics) VideoUploaded(bytes int64) {
	if m == nil {
		return
	}
	m.videosUploaded.Inc()
	m.uploadedBytes.Add(float64(bytes))
}

// TokensCredited records credited ledger entries by kind
func (m *Metrics) TokensCredited(entries []models.LedgerEntry) {
	if m == nil {
		return
	}
	for _, e := range entries {
		if e.Amount > 0 {
			m.tokensCredited.WithLabelValues(string(e.Kind)).Add(float64(e.Amount))
		}
	}
}

// ItemRedeemed records a store redemption
func (m *Metrics) ItemRedeemed(item models.StoreItem) {
	if m == nil {
		return
	}
	m.redemptions.WithLabelValues(item.Category).Inc()
}

// Middleware records request duration and in-flight count.
// Requests are labelled with the chi route pattern to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.requestDuration.
			WithLabelValues(routePattern(r), r.Method, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

// routePattern returns the matched chi pattern, or "unmatched" for 404s
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
