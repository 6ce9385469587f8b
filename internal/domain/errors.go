package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Load errors
	ErrMsgResourceUnavailable = "resource unavailable"
	ErrMsgDecodeFailure       = "decode failure"
	ErrMsgFormat              = "catalog format error"

	// Field errors
	ErrMsgInvalidNumber = "invalid number"
	ErrMsgInvalidText   = "invalid text"

	// Lookup errors
	ErrMsgItemNotFound = "item not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrResourceUnavailable means the snapshot or feed could not be read
	ErrResourceUnavailable = errors.New(ErrMsgResourceUnavailable)

	// ErrDecodeFailure means the legacy-encoded bytes could not be decoded
	ErrDecodeFailure = errors.New(ErrMsgDecodeFailure)

	// ErrFormat means the decoded text is not a valid catalog document
	ErrFormat = errors.New(ErrMsgFormat)

	ErrInvalidNumber = errors.New(ErrMsgInvalidNumber)
	ErrInvalidText   = errors.New(ErrMsgInvalidText)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
)
