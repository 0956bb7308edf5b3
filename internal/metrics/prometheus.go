package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"domainscout/internal/domain"
)

const namespace = "domainscout"

// Collector exposes pipeline and HTTP metrics to Prometheus. It observes the
// retry controller, the scheduler and the check service.
type Collector struct {
	registry *prometheus.Registry

	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	retries         prometheus.Counter
	degraded        *prometheus.CounterVec
	outcomes        *prometheus.CounterVec
	jobsStarted     prometheus.Counter
	activeJobs      prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	prefsHitRatio prometheus.Gauge
	poolAcquired  prometheus.Gauge
}

func NewCollector(reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)
	return &Collector{
		registry: reg,
		upstreamCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Upstream availability calls by result.",
		}, []string{"result"}),
		upstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Upstream call latency by result.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"result"}),
		retries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_retries_total",
			Help:      "Upstream call retries after a transient failure.",
		}),
		degraded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_degraded_total",
			Help:      "Batches reported as unknown, by cause.",
		}, []string{"cause"}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Streamed per-domain outcomes by status.",
		}, []string{"status"}),
		jobsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_started_total",
			Help:      "Check jobs started.",
		}),
		activeJobs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jobs_active",
			Help:      "Check jobs currently streaming.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		prefsHitRatio: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prefs_cache_hit_ratio",
			Help:      "Preference cache hit ratio.",
		}),
		poolAcquired: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_acquired_conns",
			Help:      "Acquired database connections.",
		}),
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) ObserveUpstream(result string, latency time.Duration) {
	c.upstreamCalls.WithLabelValues(result).Inc()
	c.upstreamLatency.WithLabelValues(result).Observe(latency.Seconds())
}

func (c *Collector) ObserveRetry() {
	c.retries.Inc()
}

// ObserveDegraded buckets the free-text reason so label cardinality stays
// fixed.
func (c *Collector) ObserveDegraded(reason string) {
	c.degraded.WithLabelValues(degradeCause(reason)).Inc()
}

func (c *Collector) ObserveOutcome(status domain.Status) {
	c.outcomes.WithLabelValues(string(status)).Inc()
}

func (c *Collector) JobStarted() {
	c.jobsStarted.Inc()
	c.activeJobs.Inc()
}

func (c *Collector) JobFinished() {
	c.activeJobs.Dec()
}

func (c *Collector) RecordHTTP(m HTTPMetric) {
	c.httpRequests.WithLabelValues(m.Method, m.Path, strconv.Itoa(m.StatusCode)).Inc()
	c.httpDuration.WithLabelValues(m.Method, m.Path).Observe(m.DurationMs / 1000)
}

func (c *Collector) RecordInfra(m InfraMetric) {
	c.prefsHitRatio.Set(m.PrefsHitRatio)
	c.poolAcquired.Set(float64(m.PoolAcquired))
}

func degradeCause(reason string) string {
	switch {
	case strings.HasPrefix(reason, "gave up after"):
		return "exhausted"
	case strings.Contains(reason, "context canceled"), strings.HasPrefix(reason, "cancelled"):
		return "cancelled"
	case strings.Contains(reason, "context deadline exceeded"):
		return "deadline"
	default:
		return "hard"
	}
}
