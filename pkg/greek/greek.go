// Package greek provides character and diacritic utilities for Modern Greek
// text: combining-mark tests, diacritic stripping and case helpers shared by
// the syllabifier and the synizesis table compiler.
package greek

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Combining diacritical marks of Greek orthography. Monotonic text only
// carries the acute and the diaeresis; the polytonic marks complete the set
// so callers can probe any of them through HasDiacritic.
const (
	// οξεία (acute)
	Acute = '\u0301'
	// βαρεία (grave)
	Grave = '\u0300'
	// περισπωμένη (circumflex)
	Circumflex = '\u0342'
	// υπογεγραμμένη (iota subscript)
	IotaSubscript = '\u0345'
	// διαλυτικά (diaeresis)
	Diaeresis = '\u0308'
	// ψιλή (smooth breathing)
	Smooth = '\u0313'
	// δασεία (rough breathing)
	Rough = '\u0314'
)

// HasDiacritic reports whether any rune of s carries the given combining
// mark once s is canonically decomposed.
//
// Precomposed letters count: HasDiacritic("ά", Acute) is true, and so is
// HasDiacritic("ΐ", Diaeresis).
func HasDiacritic(s string, mark rune) bool {
	for _, r := range norm.NFD.String(s) {
		if r == mark {
			return true
		}
	}
	return false
}

// HasAcute reports whether s carries an acute accent.
func HasAcute(s string) bool {
	return HasDiacritic(s, Acute)
}

// HasDiaeresis reports whether s carries a diaeresis.
func HasDiaeresis(s string) bool {
	return HasDiacritic(s, Diaeresis)
}

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes every combining mark from s, keeping letter case.
// The result is the diacritic-insensitive sort key used when emitting the
// synizesis table: variants that differ only by an accent sort adjacently.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// BaseLower returns the lowercased base letter of r: canonical decomposition
// first, then lowercasing. BaseLower('Ά') is 'α'.
func BaseLower(r rune) rune {
	for _, d := range norm.NFD.String(string(r)) {
		return unicode.ToLower(d)
	}
	return r
}

// IsVowel reports whether r is a Greek vowel letter, ignoring case and
// diacritics.
func IsVowel(r rune) bool {
	switch BaseLower(r) {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// Unlike strings.ToUpper it preserves accents on the remaining letters,
// which Greek full upper-casing would drop.
func Capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
