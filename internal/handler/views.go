package handler

import (
	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/naming"
	"github.com/osse101/BrandishItemSearch/internal/query"
)

// StatView is one required stat. Value is null when the snapshot omits it.
type StatView struct {
	Name    string `json:"name"`
	Value   *int   `json:"value"`
	Display string `json:"display"`
}

// ItemView is the rendered form of a catalog entry
type ItemView struct {
	Index          int        `json:"index"`
	Serial         int        `json:"serial"`
	Name           string     `json:"name"`
	RawName        string     `json:"raw_name"`
	MinDamage      int        `json:"min_damage"`
	MaxDamage      int        `json:"max_damage"`
	Price          int        `json:"price"`
	DropLevel      int        `json:"drop_level"`
	AttackRange    string     `json:"attack_range,omitempty"`
	AttackSpeed    string     `json:"attack_speed,omitempty"`
	Category       string     `json:"category,omitempty"`
	RequiredStats  []StatView `json:"required_stats"`
	CreationTraits []string   `json:"creation_traits"`
	UniqueTraits   []string   `json:"unique_traits"`
	HighTier       bool       `json:"high_tier"`
}

func newItemView(e item.Entry, highTierDropLevel int) ItemView {
	basic := e.Item.Basic

	stats := make([]StatView, 0, len(domain.StatNames))
	for _, name := range domain.StatNames {
		sv := StatView{Name: name, Display: e.Item.RequiredStats.Display(name)}
		if v, ok := e.Item.RequiredStats.Get(name); ok {
			sv.Value = &v
		}
		stats = append(stats, sv)
	}

	return ItemView{
		Index:          e.Index,
		Serial:         basic.Serial.Int(),
		Name:           e.Name,
		RawName:        basic.Name,
		MinDamage:      basic.MinDamage.Int(),
		MaxDamage:      basic.MaxDamage.Int(),
		Price:          basic.Price.Int(),
		DropLevel:      basic.DropLevel.Int(),
		AttackRange:    string(basic.AttackRange),
		AttackSpeed:    string(basic.AttackSpeed),
		Category:       basic.Category,
		RequiredStats:  stats,
		CreationTraits: naming.NormalizeLines(e.Item.CreationTraits),
		UniqueTraits:   naming.NormalizeLines(e.Item.UniqueTraits),
		HighTier:       query.IsHighTier(e, highTierDropLevel),
	}
}

func newItemViews(entries []item.Entry, highTierDropLevel int) []ItemView {
	views := make([]ItemView, len(entries))
	for i, e := range entries {
		views[i] = newItemView(e, highTierDropLevel)
	}
	return views
}
