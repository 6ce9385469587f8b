package query

// Sort keys accepted by SortBy
const (
	SortKeyDropLevel = "drop_level"
	SortKeyPrice     = "price"
	SortKeyMinDamage = "min_damage"
	SortKeyMaxDamage = "max_damage"
	SortKeyLevel     = "level"
)

// Sort directions
const (
	Ascending  = "asc"
	Descending = "desc"
)

// SortKeys lists every supported sort key
var SortKeys = []string{SortKeyDropLevel, SortKeyPrice, SortKeyMinDamage, SortKeyMaxDamage, SortKeyLevel}

// DefaultSuggestionLimit is the number of name suggestions when no limit is given
const DefaultSuggestionLimit = 5
