package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Lookups        *prometheus.CounterVec
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	DedupJoins     prometheus.Counter
	QueueDepth     prometheus.Gauge
	RequestSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoding_lookups_total",
			Help: "Total number of geocode lookups by outcome.",
		}, []string{"outcome"}),
		CacheHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geocoding_cache_hits_total",
			Help: "Total number of lookups answered from the cache.",
		}),
		CacheMisses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geocoding_cache_misses_total",
			Help: "Total number of lookups that missed the cache.",
		}),
		DedupJoins: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geocoding_dedup_joins_total",
			Help: "Total number of callers that joined an in-flight lookup.",
		}),
		QueueDepth: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geocoding_queue_depth",
			Help: "Current number of lookups waiting in or occupying the queue.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geocoding_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
