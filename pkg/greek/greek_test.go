package greek

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAcute(t *testing.T) {
	assert.True(t, HasAcute("ά"))
	assert.True(t, HasAcute("καλός"))
	assert.True(t, HasAcute("ΐ")) // acute and diaeresis combined
	assert.False(t, HasAcute("α"))
	assert.False(t, HasAcute("και"))
	assert.False(t, HasAcute(""))
}

func TestHasDiacriticPolytonic(t *testing.T) {
	assert.True(t, HasDiacritic("ὰ", Grave))
	assert.True(t, HasDiacritic("ᾶ", Circumflex))
	assert.True(t, HasDiacritic("ᾳ", IotaSubscript))
	assert.True(t, HasDiacritic("ἀ", Smooth))
	assert.True(t, HasDiacritic("ἁ", Rough))
	assert.False(t, HasDiacritic("ά", Grave))
	assert.False(t, HasDiacritic("ἀ", Rough))
}

func TestHasDiaeresis(t *testing.T) {
	assert.True(t, HasDiaeresis("ϊ"))
	assert.True(t, HasDiaeresis("ΐ"))
	assert.True(t, HasDiaeresis("καΐκι"))
	assert.False(t, HasDiaeresis("ί"))
	assert.False(t, HasDiaeresis("και"))
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"αλήθεια", "αληθεια"},
		{"Αλήθεια", "Αληθεια"},
		{"καΐκι", "καικι"},
		{"ΐ", "ι"},
		{"στρες", "στρες"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripDiacritics(tt.in), tt.in)
	}
}

func TestBaseLower(t *testing.T) {
	assert.Equal(t, 'α', BaseLower('Ά'))
	assert.Equal(t, 'α', BaseLower('ά'))
	assert.Equal(t, 'ι', BaseLower('ΐ'))
	assert.Equal(t, 'σ', BaseLower('Σ'))
}

func TestIsVowel(t *testing.T) {
	for _, r := range "αεηιουωάέήίόύώΐϊΆΈΉΊΌΎΏ" {
		assert.True(t, IsVowel(r), string(r))
	}
	for _, r := range "βγδζθκλμνξπρσςτφχψ" {
		assert.False(t, IsVowel(r), string(r))
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"αλήθεια", "Αλήθεια"},
		{"έγνοια", "Έγνοια"},
		{"ίσια", "Ίσια"},
		{"μπά", "Μπά"},
		{"για", "Για"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in), tt.in)
	}
}
