// Package sjis decodes the Shift-JIS text used by the game data exports.
package sjis

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/osse101/BrandishItemSearch/internal/domain"
)

// Decode converts Shift-JIS bytes to a UTF-8 string.
// Well-formed sequences round-trip exactly. Malformed sequences become U+FFFD,
// which is the codec's own fallback; there is no second encoding to try.
func Decode(raw []byte) (string, error) {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text to Shift-JIS. It is used to build fixtures and by the
// inspect tool; runes without a Shift-JIS mapping are an error.
func Encode(text string) ([]byte, error) {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode Shift-JIS: %w", err)
	}
	return out, nil
}
