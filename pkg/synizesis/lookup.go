// Package synizesis builds and serves the exception table for Modern Greek
// synizesis: words whose adjacent vowels fuse into one syllable, so the
// plain phonological syllabification rules place a boundary the
// pronunciation does not have.
package synizesis

// Lookup returns the forced syllable segmentation for word, or false when
// the word carries no synizesis. The returned slice is a copy; callers may
// keep or modify it.
func Lookup(word string) ([]string, bool) {
	syls, ok := table[word]
	if !ok {
		return nil, false
	}
	out := make([]string, len(syls))
	copy(out, syls)
	return out, true
}

// Len reports the number of entries in the committed table, capitalized
// variants included.
func Len() int {
	return len(table)
}
