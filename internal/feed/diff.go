// Package feed parses the diff and news feeds shown next to the catalog.
package feed

import (
	"strings"

	"github.com/osse101/BrandishItemSearch/internal/sjis"
)

// ParseDiff turns decoded diff text into bullet entries. Each line is trimmed,
// blank lines are dropped and the remaining lines are prefixed with DiffBullet.
// LF and CRLF line endings are both accepted.
func ParseDiff(text string) []string {
	entries := []string{}
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, DiffBullet+line)
	}
	return entries
}

// DecodeDiff decodes a Shift-JIS diff payload and parses it
func DecodeDiff(raw []byte) ([]string, error) {
	text, err := sjis.Decode(raw)
	if err != nil {
		return nil, err
	}
	return ParseDiff(text), nil
}

// FormatDiffBlock joins entries into a single display block
func FormatDiffBlock(entries []string) string {
	return strings.Join(entries, "\n")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
