package domain

// Item is one record of the catalog snapshot. The JSON keys are the ones used by the
// game data export, so the struct decodes the snapshot directly.
type Item struct {
	Basic          BasicInfo     `json:"基本情報"`
	RequiredStats  RequiredStats `json:"要求ステータス"`
	CreationTraits []string      `json:"アイテム情報"`
	UniqueTraits   []string      `json:"ユニーク情報"`
}

// BasicInfo holds the identifying and combat values of an item.
// Name is the raw name and may still carry markup.
type BasicInfo struct {
	Name        string `json:"名前"`
	Serial      Number `json:"シリアル"`
	MinDamage   Number `json:"最小ダメージ"`
	MaxDamage   Number `json:"最大ダメージ"`
	Price       Number `json:"価格"`
	DropLevel   Number `json:"ドロップレベル"`
	AttackRange Text   `json:"攻撃範囲"`
	AttackSpeed Text   `json:"攻撃速度"`
	Category    string `json:"種類"`
}

// RequiredStats lists the character requirements to equip an item.
// A nil field means the snapshot did not specify it.
type RequiredStats struct {
	Level        *Number `json:"レベル,omitempty"`
	Strength     *Number `json:"力,omitempty"`
	Intelligence *Number `json:"知力,omitempty"`
	Agility      *Number `json:"敏捷,omitempty"`
	Vitality     *Number `json:"体力,omitempty"`
}

// Stat names used by RequiredStats.Get and the API views
const (
	StatLevel        = "level"
	StatStrength     = "strength"
	StatIntelligence = "intelligence"
	StatAgility      = "agility"
	StatVitality     = "vitality"
)

// StatNames is the display order of required stats
var StatNames = []string{StatLevel, StatStrength, StatIntelligence, StatAgility, StatVitality}

// Get returns the named stat and whether the snapshot specified it.
// Unknown names and absent stats return (0, false).
func (s RequiredStats) Get(name string) (int, bool) {
	var n *Number
	switch name {
	case StatLevel:
		n = s.Level
	case StatStrength:
		n = s.Strength
	case StatIntelligence:
		n = s.Intelligence
	case StatAgility:
		n = s.Agility
	case StatVitality:
		n = s.Vitality
	}
	if n == nil {
		return 0, false
	}
	return n.Int(), true
}

// Value returns the named stat, or 0 when absent
func (s RequiredStats) Value(name string) int {
	v, _ := s.Get(name)
	return v
}

// Display returns the named stat formatted for people, or MissingStatDisplay when absent
func (s RequiredStats) Display(name string) string {
	v, ok := s.Get(name)
	if !ok {
		return MissingStatDisplay
	}
	return Number(v).String()
}
