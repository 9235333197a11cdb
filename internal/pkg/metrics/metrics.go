package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "therapist"

// Metrics owns a private registry so tests can build as many as they like.
// All methods are safe on a nil receiver.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	quotes          *prometheus.CounterVec
	overlaps        prometheus.Histogram
	skipped         *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_quotes_total",
		Help:      "Price quotes computed, by resolved designation",
	}, []string{"designation", "classified"})

	overlaps := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "timeline_overlaps",
		Help:      "Overlapping pairs found per day timeline",
		Buckets:   []float64{0, 1, 2, 5, 10, 25},
	})

	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_skipped_records_total",
		Help:      "Shift and reservation records left off a timeline",
	}, []string{"kind"})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Pricing cache lookups by result",
	}, []string{"result"})

	registry.MustRegister(
		requestDuration, requestTotal, quotes, overlaps, skipped, cacheLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		quotes:          quotes,
		overlaps:        overlaps,
		skipped:         skipped,
		cacheLookups:    cacheLookups,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *Metrics) ObserveQuote(designation string, classified bool) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(designation, strconv.FormatBool(classified)).Inc()
}

func (m *Metrics) ObserveOverlaps(count int) {
	if m == nil {
		return
	}
	m.overlaps.Observe(float64(count))
}

func (m *Metrics) ObserveSkippedRecord(kind string) {
	if m == nil {
		return
	}
	m.skipped.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
