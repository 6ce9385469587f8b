package item

import (
	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/naming"
)

// Entry is an item together with its position in the snapshot and its
// normalized display name. Index is the stable key used to select an item;
// it stays valid for as long as the snapshot does.
type Entry struct {
	Index int
	Name  string
	Item  domain.Item
}

// Catalog is an immutable snapshot of items in export order.
// A nil *Catalog is a valid empty catalog.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from parsed items. Display names are normalized
// once here so queries do not redo the markup stripping on every request.
func NewCatalog(items []domain.Item) *Catalog {
	entries := make([]Entry, len(items))
	for i, it := range items {
		if it.CreationTraits == nil {
			it.CreationTraits = []string{}
		}
		if it.UniqueTraits == nil {
			it.UniqueTraits = []string{}
		}
		entries[i] = Entry{
			Index: i,
			Name:  naming.NormalizeDisplayName(it.Basic.Name),
			Item:  it,
		}
	}
	return &Catalog{entries: entries}
}

// Empty returns a catalog with no items
func Empty() *Catalog {
	return &Catalog{entries: []Entry{}}
}

// Len returns the number of items
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the items in export order. The slice is shared and must not
// be modified; query functions always build new slices.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// At returns the entry at the given snapshot index
func (c *Catalog) At(index int) (Entry, bool) {
	if c == nil || index < 0 || index >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[index], true
}

// BySerial returns every entry with the given serial. Serials are informational
// and not unique, so this can return more than one entry.
func (c *Catalog) BySerial(serial int) []Entry {
	var out []Entry
	for _, e := range c.Entries() {
		if e.Item.Basic.Serial.Int() == serial {
			out = append(out, e)
		}
	}
	return out
}
