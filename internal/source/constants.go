package source

import "time"

// DefaultTimeout bounds a single fetch when none is configured
const DefaultTimeout = 10 * time.Second

// MaxPayloadBytes caps how much of a resource is read
const MaxPayloadBytes = 64 << 20

// Error messages
const (
	ErrMsgEmptyLocation  = "empty resource location"
	ErrMsgUnexpectedCode = "unexpected status code"
	ErrMsgEmptyPayload   = "empty payload"
	ErrMsgPayloadTooBig  = "payload exceeds limit"
)

// Log messages
const (
	LogMsgFetchStarted  = "Fetching resource"
	LogMsgFetchFinished = "Fetched resource"
	LogMsgFetchFailed   = "Failed to fetch resource"
)
