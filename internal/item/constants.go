package item

// ==================== Format Error Reasons ====================

// Reasons reported by FormatError
const (
	ReasonInvalidJSON  = "text is not valid JSON"
	ReasonInvalidShape = "document does not match the catalog schema"
	ReasonInvalidField = "item field has an unexpected type"
)

// ==================== Error Messages ====================

// Load error messages
const (
	ErrMsgDecodeSnapshotFailed = "failed to decode snapshot: %w"
)
