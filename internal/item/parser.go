package item

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/sjis"
	"github.com/osse101/BrandishItemSearch/internal/validation"
)

// FormatError reports decoded text that is not a usable catalog document.
// It matches domain.ErrFormat with errors.Is.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s: %v", domain.ErrMsgFormat, e.Reason, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{domain.ErrFormat, e.Err}
}

// snapshot is the top-level document; anything besides the item list is ignored
type snapshot struct {
	Items []domain.Item `json:"アイテム一覧"`
}

// Parser turns snapshot payloads into catalogs
type Parser interface {
	// Parse parses decoded snapshot text
	Parse(text string) (*Catalog, error)

	// Load decodes a Shift-JIS payload and parses it
	Load(raw []byte) (*Catalog, error)
}

type catalogParser struct {
	schemaValidator validation.SchemaValidator
}

// NewParser creates a Parser that validates against the embedded catalog schema
func NewParser() Parser {
	return &catalogParser{
		schemaValidator: validation.NewEmbeddedValidator(),
	}
}

// Load decodes a Shift-JIS payload and parses it
func (p *catalogParser) Load(raw []byte) (*Catalog, error) {
	text, err := sjis.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSnapshotFailed, err)
	}
	return p.Parse(text)
}

// Parse validates and parses decoded snapshot text.
// A document without the item list key is an empty catalog, not an error, so
// callers can tell "no items" apart from "load failed".
func (p *catalogParser) Parse(text string) (*Catalog, error) {
	data := []byte(text)

	if err := p.schemaValidator.ValidateBytes(data, validation.CatalogSchema); err != nil {
		if errors.Is(err, validation.ErrInvalidJSON) {
			return nil, &FormatError{Reason: ReasonInvalidJSON, Err: err}
		}
		return nil, &FormatError{Reason: ReasonInvalidShape, Err: err}
	}

	var doc snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: ReasonInvalidField, Err: err}
	}

	return NewCatalog(doc.Items), nil
}
