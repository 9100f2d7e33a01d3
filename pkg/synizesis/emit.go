package synizesis

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// WriteTableGo writes the Go source of the static lookup table. The entries
// are emitted in the order given, which BuildTable has already made total,
// so regenerating from identical inputs is byte-identical.
func WriteTableGo(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Code generated by synbuild. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package synizesis\n\n")
	fmt.Fprintf(bw, "// table maps each word pronounced with synizesis to its forced\n")
	fmt.Fprintf(bw, "// syllable segmentation.\n")
	fmt.Fprintf(bw, "var table = map[string][]string{\n")
	for _, e := range entries {
		fmt.Fprintf(bw, "\t%q: {", e.Word)
		for i, syl := range e.Syllables {
			if i > 0 {
				fmt.Fprintf(bw, ", ")
			}
			fmt.Fprintf(bw, "%q", syl)
		}
		fmt.Fprintf(bw, "},\n")
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// WriteRegistry writes the audit registry: the lowercase base forms, one per
// line, in table order. Capitalized variants are derived entries and stay
// out so that a review diff shows each word once.
func WriteRegistry(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		first, _ := utf8.DecodeRuneInString(e.Word)
		if unicode.IsUpper(first) {
			continue
		}
		fmt.Fprintf(bw, "%s\n", e.Word)
	}
	return bw.Flush()
}
