// Package syllabify splits Modern Greek words into syllables.
//
// Syllabify applies the plain letter-level rules: every vowel hiatus opens a
// new syllable, so δίκιο comes out as δί-κι-ο. Segment additionally fuses
// syllables at explicitly forced boundaries, which is how the synizesis
// table records that δίκιο is pronounced δί-κιο.
package syllabify

import (
	"fmt"
	"sort"

	"github.com/daxida/grac/pkg/greek"
)

// SegmentFunc is the segmentation contract consumed by the table compiler:
// forced holds 1-indexed syllable boundaries counted from the end of the
// word that must be fused. Segment is the canonical implementation; tests
// inject fakes.
type SegmentFunc func(word string, forced []int) ([]string, error)

// Onset consonant pairs that stay together at a syllable start. Includes the
// digraphs μπ ντ γκ τζ τσ and the clusters φτ χτ, which school
// syllabification never splits.
var clusters = map[[2]rune]bool{
	{'β', 'δ'}: true, {'β', 'λ'}: true, {'β', 'ρ'}: true,
	{'γ', 'κ'}: true, {'γ', 'λ'}: true, {'γ', 'ν'}: true, {'γ', 'ρ'}: true,
	{'δ', 'ρ'}: true,
	{'θ', 'λ'}: true, {'θ', 'ν'}: true, {'θ', 'ρ'}: true,
	{'κ', 'λ'}: true, {'κ', 'ν'}: true, {'κ', 'ρ'}: true, {'κ', 'τ'}: true,
	{'μ', 'ν'}: true, {'μ', 'π'}: true,
	{'ν', 'τ'}: true,
	{'π', 'λ'}: true, {'π', 'ν'}: true, {'π', 'ρ'}: true, {'π', 'τ'}: true,
	{'σ', 'β'}: true, {'σ', 'θ'}: true, {'σ', 'κ'}: true, {'σ', 'μ'}: true,
	{'σ', 'π'}: true, {'σ', 'τ'}: true, {'σ', 'φ'}: true, {'σ', 'χ'}: true,
	{'τ', 'ζ'}: true, {'τ', 'ρ'}: true, {'τ', 'σ'}: true,
	{'φ', 'θ'}: true, {'φ', 'λ'}: true, {'φ', 'ρ'}: true, {'φ', 'τ'}: true,
	{'χ', 'λ'}: true, {'χ', 'ρ'}: true, {'χ', 'τ'}: true,
}

var diphthongs = map[[2]rune]bool{
	{'α', 'ι'}: true,
	{'ε', 'ι'}: true,
	{'ο', 'ι'}: true,
	{'υ', 'ι'}: true,
	{'α', 'υ'}: true,
	{'ε', 'υ'}: true,
	{'ο', 'υ'}: true,
	{'η', 'υ'}: true,
}

func isVowel(r rune) bool {
	return greek.IsVowel(r) || r == greek.Acute
}

func isCluster(a, b rune) bool {
	return clusters[[2]rune{greek.BaseLower(a), greek.BaseLower(b)}]
}

func isDiphthong(a, b rune) bool {
	if greek.HasDiaeresis(string(b)) {
		return false
	}
	return diphthongs[[2]rune{greek.BaseLower(a), greek.BaseLower(b)}]
}

// Syllabify splits word into syllables without any synizesis merging.
// Concatenating the result reproduces word exactly.
func Syllabify(word string) []string {
	runes := []rune(word)
	pos := len(runes)

	var out []string
	for {
		syl, ok := parseSyllable(runes, &pos)
		if !ok {
			break
		}
		out = append(out, syl)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// parseSyllable scans backwards from *pos for one coda-nucleus-onset group.
func parseSyllable(runes []rune, pos *int) (string, bool) {
	to := *pos

	moveCoda(runes, pos)
	moveNucleus(runes, pos)
	moveOnset(runes, pos)

	if *pos < to {
		return string(runes[*pos:to]), true
	}
	return "", false
}

func moveCoda(runes []rune, pos *int) {
	for *pos > 0 && !isVowel(runes[*pos-1]) {
		*pos--
	}
}

func moveNucleus(runes []rune, pos *int) {
	to := *pos
	for *pos > 0 && (isVowel(runes[*pos-1]) || runes[*pos-1] == greek.Rough) {
		if to-*pos > 0 && runes[*pos] != greek.Acute && runes[*pos] != greek.Rough {
			if isDiphthong(runes[*pos-1], runes[*pos]) {
				// Two overlapping diphthongs share the iota: split after it.
				if to-*pos > 1 && runes[*pos+1] == 'ι' {
					*pos++
					break
				}
			} else {
				break
			}
		}
		*pos--
	}
}

func moveOnset(runes []rune, pos *int) {
	to := *pos
	for *pos > 0 && !isVowel(runes[*pos-1]) && (to == *pos || isCluster(runes[*pos-1], runes[*pos])) {
		*pos--
	}
}

// Segment syllabifies word and fuses the syllables around each forced
// boundary. Positions are 1-indexed from the end of the word: 1 joins the
// last two syllables, 2 the two before, and so on. Duplicates are ignored;
// a position outside [1, syllables-1] is an error so that a bad curated
// override fails the build instead of shipping a corrupt entry.
func Segment(word string, forced []int) ([]string, error) {
	syls := Syllabify(word)
	if len(forced) == 0 {
		return syls, nil
	}

	ps := make([]int, len(forced))
	copy(ps, forced)
	sort.Sort(sort.Reverse(sort.IntSlice(ps)))

	// Positions refer to the boundaries of the unmerged segmentation, so
	// validate against the original count before any joining.
	n := len(syls)
	prev := 0
	for _, p := range ps {
		if p < 1 || p >= n {
			return nil, fmt.Errorf("syllabify: merge position %d out of range for %q (%d syllables)", p, word, n)
		}
		if p == prev {
			continue
		}
		prev = p
		// Joining at a higher boundary first keeps lower positions, counted
		// from the end, stable.
		i := len(syls) - p - 1
		syls[i] += syls[i+1]
		syls = append(syls[:i+1], syls[i+2:]...)
	}
	return syls, nil
}
