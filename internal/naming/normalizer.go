package naming

import (
	"regexp"
	"strings"
)

// colorTagPattern matches an opening color tag with a non-empty attribute, e.g. <c:red>
var colorTagPattern = regexp.MustCompile(`<c:[^>]+>`)

var (
	tokenReplacer   = strings.NewReplacer(RarityMarker, "", NewlineToken, "", ColorTagClose, "")
	controlReplacer = strings.NewReplacer(ControlSeparatorStart, "", ControlSeparatorEnd, "")
)

// NormalizeDisplayName strips the rarity marker, color tags, newline tokens and
// stray closing tags from a raw item name.
// Stripping repeats until nothing changes: removing one token can join the text
// around it into another token ("<<n>n>"), and the result must be idempotent.
func NormalizeDisplayName(raw string) string {
	name := raw
	for {
		next := stripDisplayMarkup(name)
		if next == name {
			return name
		}
		name = next
	}
}

func stripDisplayMarkup(s string) string {
	if !strings.ContainsAny(s, "<★") {
		return s
	}
	s = colorTagPattern.ReplaceAllString(s, "")
	return tokenReplacer.Replace(s)
}

// NormalizeDescriptionLine removes the separator control codes from a trait line.
// Other whitespace, including tabs and newlines, is kept.
func NormalizeDescriptionLine(raw string) string {
	if !strings.ContainsAny(raw, ControlSeparatorStart+ControlSeparatorEnd) {
		return raw
	}
	return controlReplacer.Replace(raw)
}

// NormalizeLines applies NormalizeDescriptionLine to every line.
// The result is never nil.
func NormalizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = NormalizeDescriptionLine(line)
	}
	return out
}
