package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	visitsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visits_submitted_total",
			Help: "Total number of visit reports submitted",
		},
		[]string{"visit_type", "lead_type"},
	)

	leadStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_status_updates_total",
			Help: "Total number of lead status edits applied",
		},
		[]string{"status"},
	)

	geoResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolocation_resolutions_total",
			Help: "Total number of geolocation resolutions by source",
		},
		[]string{"source"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordVisitSubmitted(visitType, leadType string) {
	visitsSubmitted.WithLabelValues(visitType, leadType).Inc()
}

func RecordLeadStatusUpdate(status string) {
	leadStatusUpdates.WithLabelValues(status).Inc()
}

// RecordGeoResolution counts resolutions per source ("gps", "ip-api",
// "ipinfo" or "unavailable").
func RecordGeoResolution(source string) {
	geoResolutions.WithLabelValues(source).Inc()
}
