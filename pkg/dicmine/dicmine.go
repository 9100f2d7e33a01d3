// Package dicmine mines a flat spellchecker dictionary for neuter nouns
// whose plural carries synizesis.
//
// The trick is cheap and precise: a word ending in unaccented ι is only kept
// when its plural (word+α, or the γ-inserted word[:-1]+για) itself occurs in
// the dictionary, and that plural is accented where the unmerged
// syllabification would make it proparoxytone. χιόνι qualifies because
// χιόνια is also a dictionary word; random ι-final words are not.
package dicmine

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/daxida/grac/pkg/greek"
	"github.com/daxida/grac/pkg/syllabify"
)

// DecodeError records one failed decode attempt of the dictionary file.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode as %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decodeAttempt is one entry of the ordered encoding fallback chain.
type decodeAttempt struct {
	name   string
	decode func([]byte) (string, error)
}

// The el_GR.dic distributed by elspell.gr is ISO-8859-7; the ONLYOFFICE
// copy is UTF-8. Try in that order, first full decode wins.
var attempts = []decodeAttempt{
	{"iso-8859-7", decodeISO88597},
	{"utf-8", decodeUTF8},
}

func decodeISO88597(raw []byte) (string, error) {
	out, err := charmap.ISO8859_7.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	// The decoder maps undefined bytes to U+FFFD instead of failing.
	if i := strings.IndexRune(string(out), utf8.RuneError); i >= 0 {
		return "", fmt.Errorf("undefined byte at offset %d", i)
	}
	return string(out), nil
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("invalid byte sequence")
	}
	return string(raw), nil
}

// DecodeWords decodes a raw dictionary file with the encoding fallback
// chain and splits it into words, skipping the leading header/count line.
func DecodeWords(raw []byte) ([]string, error) {
	var errs []error
	for _, a := range attempts {
		text, err := a.decode(raw)
		if err != nil {
			errs = append(errs, &DecodeError{Encoding: a.name, Err: err})
			continue
		}
		lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
		if len(lines) <= 1 {
			return nil, nil
		}
		words := make([]string, 0, len(lines)-1)
		for _, line := range lines[1:] {
			if line = strings.TrimRight(line, "\r"); line != "" {
				words = append(words, line)
			}
		}
		return words, nil
	}
	return nil, fmt.Errorf("unable to decode dictionary with the candidate encodings (iso-8859-7, utf-8): %w", errors.Join(errs...))
}

// LoadWords reads and decodes the dictionary file at path.
func LoadWords(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	words, err := DecodeWords(raw)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return words, nil
}

// Unaccented vowels that rule out the word+α pluralization when they occupy
// the penultimate position. Accented vowels deliberately pass: ρολόι, χούι.
const plainVowels = "αεηιου"

// MineNeuters extracts plural forms that should carry synizesis from a
// dictionary word list. The segmentation function is consulted without any
// forced merge; a plural qualifies when its acute falls on the third
// syllable from the end, or the fourth for words whose spelled-out diphthong
// the naive segmentation fails to fuse (ρόιδια and friends).
func MineNeuters(words []string, segment syllabify.SegmentFunc) ([]string, error) {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	found := make(map[string]bool)
	for _, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if size == 0 || unicode.IsUpper(first) {
			continue
		}
		runes := []rune(word)
		if len(runes) < 2 {
			continue
		}
		if runes[len(runes)-1] != 'ι' {
			continue
		}
		if strings.ContainsRune(plainVowels, runes[len(runes)-2]) {
			continue
		}

		// χιόνι / χιόνια, χούι / χούγια
		plurals := []string{word + "α", string(runes[:len(runes)-1]) + "για"}
		for _, plural := range plurals {
			if !wordSet[plural] {
				continue
			}
			ok, err := isProparoxytone(plural, segment)
			if err != nil {
				return nil, fmt.Errorf("dicmine: segment %q: %w", plural, err)
			}
			if ok {
				found[plural] = true
			}
		}
	}

	out := make([]string, 0, len(found))
	for w := range found {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

func isProparoxytone(word string, segment syllabify.SegmentFunc) (bool, error) {
	syls, err := segment(word, nil)
	if err != nil {
		return false, err
	}
	return hasAcuteAt(syls, 3) || hasAcuteAt(syls, 4), nil
}

// hasAcuteAt reports an acute on the pos-th syllable counted from the end.
func hasAcuteAt(syls []string, pos int) bool {
	return len(syls) >= pos && greek.HasAcute(syls[len(syls)-pos])
}
