package synizesis

// Provenance records which pipeline stage proposed a candidate. It is kept
// for diagnostics only and never influences the emitted table.
type Provenance string

const (
	ProvenanceCurated    Provenance = "curated"
	ProvenanceDictionary Provenance = "dictionary"
	ProvenanceScraped    Provenance = "scraped"
)

// Candidate is a word form proposed for the table.
type Candidate struct {
	Word       string
	Provenance Provenance
}

// Assemble merges every source into one candidate list: curated singles,
// rule expansions, mined and scraped words, in that order. Duplicates keep
// the first occurrence (and its provenance); any word in the ambiguous set
// is dropped outright, whatever proposed it.
func Assemble(src Sources, ambiguous map[string]bool) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)

	add := func(words []string, prov Provenance) {
		for _, w := range words {
			if w == "" || seen[w] || ambiguous[w] {
				continue
			}
			seen[w] = true
			out = append(out, Candidate{Word: w, Provenance: prov})
		}
	}

	add(src.Curated, ProvenanceCurated)
	for _, rule := range src.Rules {
		add(rule.Expand(), ProvenanceCurated)
	}
	add(src.Mined, ProvenanceDictionary)
	add(src.Scraped, ProvenanceScraped)
	return out
}
