package synizesis

import (
	"fmt"
	"sort"

	"github.com/daxida/grac/pkg/greek"
	"github.com/daxida/grac/pkg/syllabify"
)

// Entry pairs a surface form with its forced segmentation. Joining the
// syllables reconstructs the word exactly.
type Entry struct {
	Word      string
	Syllables []string
}

// BuildTable computes the forced segmentation of every candidate and of its
// capitalized variant, then sorts the entries by diacritic-stripped word
// with the accented word as tie-break. The stripped primary key keeps
// orthographic variants of one lemma (ζήλια/ζήλεια) on adjacent lines, so a
// curated-list edit regenerates with a minimal diff.
//
// Merge positions come from the overrides map when present, otherwise they
// are derived from the naive segmentation. A word the segmentation rejects
// fails the whole build; a bad curated entry must not ship.
func BuildTable(cands []Candidate, segment syllabify.SegmentFunc, overrides map[string][]int) ([]Entry, error) {
	entries := make([]Entry, 0, 2*len(cands))
	seen := make(map[string]bool, 2*len(cands))

	add := func(word string, syls []string) {
		if !seen[word] {
			seen[word] = true
			entries = append(entries, Entry{Word: word, Syllables: syls})
		}
	}

	build := func(cand Candidate) error {
		positions, ok := overrides[cand.Word]
		if !ok {
			positions = derivePositions(cand.Word, segment)
		}
		syls, err := segment(cand.Word, positions)
		if err != nil {
			return fmt.Errorf("synizesis: %s candidate %q: %w", cand.Provenance, cand.Word, err)
		}
		add(cand.Word, syls)

		capSyls := make([]string, len(syls))
		copy(capSyls, syls)
		capSyls[0] = greek.Capitalize(capSyls[0])
		add(greek.Capitalize(cand.Word), capSyls)
		return nil
	}

	inCands := make(map[string]bool, len(cands))
	for _, cand := range cands {
		inCands[cand.Word] = true
		if err := build(cand); err != nil {
			return nil, err
		}
	}

	// Override words are table members in their own right, whether or not a
	// source list happens to mention them.
	extra := make([]string, 0, len(overrides))
	for word := range overrides {
		if !inCands[word] {
			extra = append(extra, word)
		}
	}
	sort.Strings(extra)
	for _, word := range extra {
		if err := build(Candidate{Word: word, Provenance: ProvenanceCurated}); err != nil {
			return nil, err
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		ki, kj := greek.StripDiacritics(entries[i].Word), greek.StripDiacritics(entries[j].Word)
		if ki != kj {
			return ki < kj
		}
		return entries[i].Word < entries[j].Word
	})
	return entries, nil
}

// derivePositions returns the syllable boundaries to fuse for word: the
// final boundary, plus every internal boundary where a lone unaccented
// ι/η/υ closes the left syllable before a vowel-initial right syllable.
// That second clause is what turns the four naive syllables of χιόνια into
// χιό-νια rather than χι-ό-νια: the χι|ό hiatus merges too.
func derivePositions(word string, segment syllabify.SegmentFunc) []int {
	syls, err := segment(word, nil)
	if err != nil || len(syls) < 2 {
		return nil
	}

	positions := []int{1}
	for i := 0; i+1 < len(syls); i++ {
		p := len(syls) - 1 - i
		if p != 1 && isHiatusBoundary(syls[i], syls[i+1]) {
			positions = append(positions, p)
		}
	}
	return positions
}

// isHiatusBoundary reports whether left ends in a lone unaccented iota-class
// vowel (ι, η or υ not preceded by a vowel, so not part of a diphthong and
// not marked with a diaeresis) and right starts with a vowel.
func isHiatusBoundary(left, right string) bool {
	runes := []rune(left)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	switch greek.BaseLower(last) {
	case 'ι', 'η', 'υ':
	default:
		return false
	}
	if greek.HasAcute(string(last)) || greek.HasDiaeresis(string(last)) {
		return false
	}
	if len(runes) > 1 && greek.IsVowel(runes[len(runes)-2]) {
		return false
	}

	for _, r := range right {
		return greek.IsVowel(r)
	}
	return false
}
