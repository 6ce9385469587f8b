package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidIndex  = "Invalid item index"
	ErrMsgInvalidSerial = "Invalid serial"

	// Query parameter error messages
	ErrMsgNotAnInteger = "Must be an integer"

	// Feed error messages
	ErrMsgNewsUnavailable = "News is not available"
	ErrMsgNoNews          = "No news yet"
	ErrMsgDiffUnavailable = "Diff feed is not available"

	// Readiness messages
	ErrMsgCatalogNotLoaded = "catalog not loaded"
)

// Status strings for health responses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// DefaultPageLimit is the page size of GET /items when no limit is given
const DefaultPageLimit = 100

// Query parameter names
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamOrder    = "order"
	ParamOffset   = "offset"
	ParamLimit    = "limit"
)

// Path parameter names
const (
	URLParamIndex  = "index"
	URLParamSerial = "serial"
)

// Log messages
const (
	LogMsgSearchCompleted    = "Catalog search completed"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgFeedRequestFailed  = "Feed request failed"
	LogMsgInvalidQueryParams = "Invalid query parameters"
)
