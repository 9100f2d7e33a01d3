// Package expand generates inflected word forms from lemma stems and ending
// suffixes.
package expand

import "strings"

// LemmaRule couples a family of lemma stems with the whitespace-separated
// endings each stem accepts. Rules are author-curated; no linguistic
// validation happens here.
type LemmaRule struct {
	Stems   []string
	Endings string
}

// Expand returns every stem+ending concatenation of the rule, in rule order,
// with duplicate concatenations collapsed.
func (r LemmaRule) Expand() []string {
	return Expand(r.Stems, r.Endings)
}

// Expand concatenates every stem with every whitespace-separated ending.
// Empty stems or endings yield an empty result, not an error.
func Expand(stems []string, endings string) []string {
	fields := strings.Fields(endings)
	if len(stems) == 0 || len(fields) == 0 {
		return nil
	}

	out := make([]string, 0, len(stems)*len(fields))
	seen := make(map[string]bool, len(stems)*len(fields))
	for _, stem := range stems {
		for _, ending := range fields {
			form := stem + ending
			if !seen[form] {
				seen[form] = true
				out = append(out, form)
			}
		}
	}
	return out
}
