package synizesis

import (
	"github.com/daxida/grac/pkg/expand"
	"github.com/daxida/grac/pkg/greek"
)

// The curated word lists are returned by constructors instead of living in
// package globals so the compiler stays a pure function of its inputs and
// tests cannot be tainted by a shared mutated slice.

// Sources collects every candidate word list feeding the assembler.
type Sources struct {
	// Curated single-word exceptions that no lemma rule covers.
	Curated []string
	// Rules generate inflected families (stem x endings).
	Rules []expand.LemmaRule
	// Mined holds dictionary-miner output; empty outside full rebuilds.
	Mined []string
	// Scraped holds category-scraper output; empty outside full rebuilds.
	Scraped []string
}

// CuratedSources returns the hand-maintained word lists.
func CuratedSources() Sources {
	return Sources{
		Curated: []string{
			// λόγια is always bisyllabic as a noun; the adjective reading
			// is trisyllabic but rare enough to force the noun split.
			"λόγια",
			// έγνοια is always bisyllabic in this orthography; έννοια can
			// be either and is ambiguous instead.
			"έγνοια",
			"κουράγιο",
			"καινούριο",
			"καινούργιο",
			"χρόνια",
			"χούγια",
			"ίσια",
			"παντζούρια",

			// Monosyllables.
			"πιο",
			"πια",
			"μια",
			"μιας",
			"για",
			"γεια",
		},
		Rules: []expand.LemmaRule{
			// Feminine nouns in -ια, genitive -ιας, plural -ες. When the
			// -ια form has synizesis so does the -εια spelling where one
			// exists (ζήλια/ζήλεια, περηφάνια/περηφάνεια).
			{
				Stems: []string{
					"αλήθει",
					"αρρώστι",
					"φτώχει",
					"φτώχι",
					"συμπόνι",
					"περηφάνει",
					"περηφάνι",
					"ορφάνι",
					"ζήλει",
					"ζήλι",
				},
				Endings: "α ας ες",
			},
			// Adjectives in -ιος/-ια/-ιο, like αλογίσιος.
			{
				Stems:   []string{"αλογίσι"},
				Endings: "ος ου ο ε α ας ων ους ες",
			},
			// Neuter nouns in -ιο with plural in -ια. ίδιος is listed here
			// too but the ambiguous set wins and keeps it out of the table.
			{
				Stems:   []string{"δίκι", "μπάνι", "ίδι"},
				Endings: "ο ου α ων",
			},
			// Masculine nouns in -ιος with plural in -ιοι.
			{
				Stems:   []string{"ίσκι"},
				Endings: "ος ου ο ε οι ων ους",
			},
		},
	}
}

// AmbiguousWords returns the forms with two accepted pronunciations. Each
// depends on the intended sense (η έννοια "concept" is trisyllabic, έννοια
// "worry" bisyllabic), so no deterministic entry is possible and the word is
// excluded from the table no matter which source proposed it.
func AmbiguousWords() map[string]bool {
	var words []string
	words = append(words, expand.Expand([]string{"έννοι"}, "α ας ες")...)
	// πίνω aorist vs ήπιος.
	words = append(words, expand.Expand([]string{"ήπι"}, "α ες")...)
	words = append(words, expand.Expand([]string{"ίδι"}, "ος ου ο ε οι ων ους α ας ες")...)
	// ήλιος the star vs Ηλίας clipped forms.
	words = append(words, expand.Expand([]string{"ήλι"}, "ου ο")...)
	// Plural adjectives the miner would otherwise pick up.
	words = append(words, "άγια", "πλάγια")

	set := make(map[string]bool, 2*len(words))
	for _, w := range words {
		set[w] = true
		set[greek.Capitalize(w)] = true
	}
	return set
}

// MergeOverrides maps words whose merge position cannot be derived from the
// hiatus rule to their explicit forced positions. These carry a historic
// consonant+υ diphthong (δίχτυα) or a merge the naive segmentation never
// proposes (βράδια), so the generic single-boundary default misplaces the
// split.
func MergeOverrides() map[string][]int {
	return map[string][]int{
		"βράδια": {1},
		"δίχτυα": {1},
		"στάχυα": {1},
	}
}
