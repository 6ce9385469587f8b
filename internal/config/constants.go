package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvLogDir            = "LOG_DIR"
	EnvCatalogSource     = "CATALOG_SOURCE"
	EnvNewsSource        = "NEWS_SOURCE"
	EnvDiffSource        = "DIFF_SOURCE"
	EnvFetchTimeout      = "FETCH_TIMEOUT"
	EnvFeedCacheSize     = "FEED_CACHE_SIZE"
	EnvFeedCacheTTL      = "FEED_CACHE_TTL"
	EnvSuggestionLimit   = "SUGGESTION_LIMIT"
	EnvHighTierDropLevel = "HIGH_TIER_DROP_LEVEL"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultLogDir            = "logs"
	DefaultCatalogSource     = "public/items.json"
	DefaultNewsSource        = "public/news.txt"
	DefaultDiffSource        = "public/diff.txt"
	DefaultFetchTimeout      = 10 * time.Second
	DefaultFeedCacheSize     = 8
	DefaultFeedCacheTTL      = 5 * time.Minute
	DefaultSuggestionLimit   = 5
	DefaultHighTierDropLevel = 1000
)

// Warnings returned by Warnings
const (
	WarnInsecureSource    = "%s uses plain http; prefer https for remote resources"
	WarnNoTrustedProxies  = "TRUSTED_PROXIES is empty in production; rate limiting will key on the proxy address"
	WarnDebugInProduction = "LOG_LEVEL is debug in production"
)
