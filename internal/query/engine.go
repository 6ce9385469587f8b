// Package query filters, sorts and summarizes an in-memory catalog.
//
// Every function is pure: it reads the catalog and the explicit query state it
// is given and returns new slices. Nothing is cached between calls and no index
// is built; catalogs are small enough for a linear scan per request.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
)

// Sort selects a numeric field and a direction
type Sort struct {
	Key       string
	Direction string
}

// State is everything a query depends on
type State struct {
	Text     string
	Category string
	Sort     Sort
}

// DefaultState is an unfiltered query sorted by ascending drop level
func DefaultState() State {
	return State{Sort: Sort{Key: SortKeyDropLevel, Direction: Ascending}}
}

// SuggestNames returns up to limit display names containing text, in catalog order.
// The match is a literal, case-sensitive substring match. An empty text matches
// every name; callers decide whether to show suggestions for it.
func SuggestNames(catalog *item.Catalog, text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	names := make([]string, 0, limit)
	for _, e := range catalog.Entries() {
		if len(names) == limit {
			break
		}
		if strings.Contains(e.Name, text) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Filter keeps entries whose display name contains text and, when category is
// set, whose raw category equals it exactly. Catalog order is preserved.
func Filter(catalog *item.Catalog, text, category string) []item.Entry {
	out := make([]item.Entry, 0, catalog.Len())
	for _, e := range catalog.Entries() {
		if !strings.Contains(e.Name, text) {
			continue
		}
		if category != "" && e.Item.Basic.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortByDropLevel returns entries ordered by drop level
func SortByDropLevel(entries []item.Entry, direction string) []item.Entry {
	return SortBy(entries, Sort{Key: SortKeyDropLevel, Direction: direction})
}

// SortBy returns a new slice ordered by the numeric field named in s.
// The sort is stable, so ties keep their input order. Unknown keys sort by drop
// level and any direction other than Descending is ascending.
func SortBy(entries []item.Entry, s Sort) []item.Entry {
	field := sortField(s.Key)
	desc := s.Direction == Descending

	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b item.Entry) int {
		c := cmp.Compare(field(a), field(b))
		if desc {
			return -c
		}
		return c
	})
	return out
}

func sortField(key string) func(item.Entry) int {
	switch key {
	case SortKeyPrice:
		return func(e item.Entry) int { return e.Item.Basic.Price.Int() }
	case SortKeyMinDamage:
		return func(e item.Entry) int { return e.Item.Basic.MinDamage.Int() }
	case SortKeyMaxDamage:
		return func(e item.Entry) int { return e.Item.Basic.MaxDamage.Int() }
	case SortKeyLevel:
		return func(e item.Entry) int { return e.Item.RequiredStats.Value(domain.StatLevel) }
	default:
		return func(e item.Entry) int { return e.Item.Basic.DropLevel.Int() }
	}
}

// DistinctCategories returns the distinct non-empty categories in ascending order
func DistinctCategories(catalog *item.Catalog) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, e := range catalog.Entries() {
		c := e.Item.Basic.Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}

// Run filters then sorts
func Run(catalog *item.Catalog, state State) []item.Entry {
	return SortBy(Filter(catalog, state.Text, state.Category), state.Sort)
}

// Page returns at most limit entries starting at offset. A limit of zero or less
// means no limit.
func Page(entries []item.Entry, offset, limit int) []item.Entry {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) {
		return []item.Entry{}
	}
	end := len(entries)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return entries[offset:end]
}

// IsHighTier reports whether the entry's drop level reaches threshold
func IsHighTier(e item.Entry, threshold int) bool {
	return e.Item.Basic.DropLevel.Int() >= threshold
}

// IsValidSortKey reports whether key is a supported sort key
func IsValidSortKey(key string) bool {
	return slices.Contains(SortKeys, key)
}
