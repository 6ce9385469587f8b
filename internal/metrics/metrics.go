package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoads,
			Help: HelpTextCatalogLoads,
		},
		[]string{LabelResult},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCatalogLoadDuration,
			Help:    HelpTextCatalogLoadDuration,
			Buckets: LoadLatencyBuckets,
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	QueriesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQueriesPerformed,
			Help: HelpTextQueriesPerformed,
		},
		[]string{LabelOperation},
	)
)

// Feed Metrics
var (
	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeedFetches,
			Help: HelpTextFeedFetches,
		},
		[]string{LabelFeed, LabelResult},
	)

	FeedCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeedCacheHits,
			Help: HelpTextFeedCacheHits,
		},
		[]string{LabelFeed},
	)
)

// RecordCatalogLoad records the outcome of a catalog load
func RecordCatalogLoad(err error, duration time.Duration, items int) {
	CatalogLoads.WithLabelValues(result(err)).Inc()
	CatalogLoadDuration.Observe(duration.Seconds())
	CatalogItems.Set(float64(items))
}

// RecordQuery counts one query operation
func RecordQuery(operation string) {
	QueriesPerformed.WithLabelValues(operation).Inc()
}

// RecordFeedFetch records the outcome of fetching a feed
func RecordFeedFetch(feed string, err error) {
	FeedFetches.WithLabelValues(feed, result(err)).Inc()
}

// RecordFeedCacheHit counts a feed served from cache
func RecordFeedCacheHit(feed string) {
	FeedCacheHits.WithLabelValues(feed).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
