package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameCatalogLoads        = "catalog_loads_total"
	MetricNameCatalogLoadDuration = "catalog_load_duration_seconds"
	MetricNameCatalogItems        = "catalog_items"
	MetricNameQueriesPerformed    = "catalog_queries_total"
)

// Feed metric names
const (
	MetricNameFeedFetches   = "feed_fetches_total"
	MetricNameFeedCacheHits = "feed_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Catalog metric help text
const (
	HelpTextCatalogLoads        = "Total number of catalog loads by result"
	HelpTextCatalogLoadDuration = "Catalog fetch, decode and parse latency in seconds"
	HelpTextCatalogItems        = "Number of items in the current catalog snapshot"
	HelpTextQueriesPerformed    = "Total number of catalog queries by operation"
)

// Feed metric help text
const (
	HelpTextFeedFetches   = "Total number of feed fetches by feed and result"
	HelpTextFeedCacheHits = "Total number of feed requests served from cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelOperation = "operation"
	LabelFeed      = "feed"
)

// ============================================================================
// Label Values
// ============================================================================

// Load and fetch results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Query operations
const (
	OperationSearch     = "search"
	OperationSuggest    = "suggest"
	OperationCategories = "categories"
	OperationLookup     = "lookup"
)

// Feeds
const (
	FeedNews = "news"
	FeedDiff = "diff"
)

// UnmatchedRoute labels requests that did not match a route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LoadLatencyBuckets covers catalog loads from 10ms to 30s
var LoadLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
