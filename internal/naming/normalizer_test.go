package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDisplayName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Axe", "Axe"},
		{"rarity marker", "★Sword", "Sword"},
		{"color tag pair", "★Sword<c:red></c>", "Sword"},
		{"color wraps name", "<c:blue>ブリザード</c>ソード", "ブリザードソード"},
		{"newline token", "ロング<n>ソード", "ロングソード"},
		{"stray closing tag", "Shield</c>", "Shield"},
		{"several markers", "★★Helm★", "Helm"},
		{"empty color attribute kept", "<c:>Bow", "<c:>Bow"},
		{"unrelated angle brackets kept", "a<b>c", "a<b>c"},
		{"nested token exposed by removal", "<<n>n>Mace", "Mace"},
		{"color tag exposed by removal", "<c★:red>Lance", "Lance"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDisplayName(tt.raw))
		})
	}
}

func TestNormalizeDisplayName_Idempotent(t *testing.T) {
	inputs := []string{
		"★Sword<c:red></c>",
		"<<n>n>",
		"<c:<c:x>y>z",
		"</</c>c>",
		"★<n></c><c:gold>★",
		"普通の名前",
		"<c:>",
	}

	for _, in := range inputs {
		once := NormalizeDisplayName(in)
		assert.Equal(t, once, NormalizeDisplayName(once), "input %q", in)
	}
}

func TestNormalizeDescriptionLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no control codes", "攻撃力+10", "攻撃力+10"},
		{"separators removed", "\u0001炎属性\u0002", "炎属性"},
		{"whitespace kept", "  a\tb \n", "  a\tb \n"},
		{"other control kept", "x\u0003y", "x\u0003y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDescriptionLine(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeDescriptionLine(got))
		})
	}
}

func TestNormalizeLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeLines([]string{"\u0001a", "b\u0002"}))

	got := NormalizeLines(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
