package domain

// Snapshot document keys
const (
	// CatalogItemsKey is the top-level key holding the item list
	CatalogItemsKey = "アイテム一覧"
)

// Display constants
const (
	// MissingStatDisplay is shown for required stats the snapshot does not specify
	MissingStatDisplay = "—"

	// DefaultHighTierDropLevel is the drop level from which items are highlighted
	DefaultHighTierDropLevel = 1000
)
