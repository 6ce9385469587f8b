package session

import "time"

// Cache defaults
const (
	DefaultFeedCacheSize = 8
	DefaultFeedCacheTTL  = 5 * time.Minute
)

// singleflight key prefixes
const (
	keyCatalog = "catalog:"
	keyNews    = "news:"
	keyDiff    = "diff:"
)

// User-visible load errors
const (
	UserMsgLoadFailed  = "データの読み込みに失敗しました"
	UserMsgParseFailed = "JSONデータの解析に失敗しました"
)

// Log messages
const (
	LogMsgCatalogLoadStarted = "Loading catalog"
	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgCatalogLoadFailed  = "Catalog load failed, serving empty catalog"
	LogMsgCatalogEmpty       = "Catalog snapshot contains no items"
	LogMsgFeedCacheHit       = "Feed served from cache"
	LogMsgFeedLoadFailed     = "Feed load failed"
)
