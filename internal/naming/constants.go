package naming

// ============================================================================
// Display Name Markup
// ============================================================================

// RarityMarker is the glyph the export prefixes to rare item names
const RarityMarker = "★"

// ColorTagPrefix opens an inline color tag such as <c:red>
const ColorTagPrefix = "<c:"

// ColorTagClose closes a color tag; malformed exports leave these stranded
const ColorTagClose = "</c>"

// NewlineToken is the explicit line-break markup used inside names
const NewlineToken = "<n>"

// ============================================================================
// Description Control Codes
// ============================================================================

// Control code points the export uses as internal separators in trait lines
const (
	ControlSeparatorStart = "\u0001"
	ControlSeparatorEnd   = "\u0002"
)
