// Package metrics collects and exposes Prometheus metrics of the event cache
// and the backend HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Revalidation outcomes
const (
	RevalidationUnchanged = "unchanged"
	RevalidationReplaced  = "replaced"
	RevalidationStale     = "stale"
	RevalidationFailed    = "failed"
)

// CacheRecorder metrics of the month-indexed event cache
type CacheRecorder interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordRevalidation(result string)
	RecordPreload(success bool)
	RecordRollback(op string)
}

// HTTPRecorder metrics of the backend HTTP server
type HTTPRecorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

// Collector Prometheus implementation of CacheRecorder and HTTPRecorder
type Collector struct {
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	revalidations *prometheus.CounterVec
	preloads      *prometheus.CounterVec
	rollbacks     *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

var (
	_ CacheRecorder = (*Collector)(nil)
	_ HTTPRecorder  = (*Collector)(nil)
)

// NewCollector creates the collector and registers its metrics in reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophcal_cache_hits_total",
			Help: "Month loads served from the cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophcal_cache_misses_total",
			Help: "Month loads that required a foreground fetch",
		}),
		revalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophcal_cache_revalidations_total",
			Help: "Background revalidations by outcome",
		}, []string{"result"}),
		preloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophcal_cache_preloads_total",
			Help: "Adjacent month preloads by outcome",
		}, []string{"result"}),
		rollbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophcal_cache_rollbacks_total",
			Help: "Optimistic mutations undone after a remote failure",
		}, []string{"op"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophcal_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gophcal_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.revalidations,
		c.preloads,
		c.rollbacks,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// RecordCacheHit implements CacheRecorder
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordCacheMiss implements CacheRecorder
func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

// RecordRevalidation implements CacheRecorder
func (c *Collector) RecordRevalidation(result string) {
	c.revalidations.WithLabelValues(result).Inc()
}

// RecordPreload implements CacheRecorder
func (c *Collector) RecordPreload(success bool) {
	result := "ok"
	if !success {
		result = "failed"
	}
	c.preloads.WithLabelValues(result).Inc()
}

// RecordRollback implements CacheRecorder
func (c *Collector) RecordRollback(op string) {
	c.rollbacks.WithLabelValues(op).Inc()
}

// RecordRequest implements HTTPRecorder
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler HTTP handler for Prometheus scraping
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything
type Nop struct{}

var (
	_ CacheRecorder = Nop{}
	_ HTTPRecorder  = Nop{}
)

func (Nop) RecordCacheHit() {}
func (Nop) RecordCacheMiss() {}
func (Nop) RecordRevalidation(string) {}
func (Nop) RecordPreload(bool) {}
func (Nop) RecordRollback(string) {}
func (Nop) RecordRequest(string, string, int, time.Duration) {}
