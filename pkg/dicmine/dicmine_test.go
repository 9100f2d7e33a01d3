package dicmine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/daxida/grac/pkg/syllabify"
)

func TestDecodeWordsUTF8(t *testing.T) {
	// ή is 0xCE 0xAE in UTF-8 and 0xAE is unassigned in ISO-8859-7, so the
	// first decode attempt fails and the UTF-8 fallback takes over.
	raw := []byte("2\nαλήθεια\nζήλια\n")
	words, err := DecodeWords(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"αλήθεια", "ζήλια"}, words)
}

func TestDecodeWordsISO88597(t *testing.T) {
	enc, err := charmap.ISO8859_7.NewEncoder().Bytes([]byte("2\nχιόνι\nχιόνια\n"))
	require.NoError(t, err)

	words, err := DecodeWords(enc)
	require.NoError(t, err)
	assert.Equal(t, []string{"χιόνι", "χιόνια"}, words)
}

func TestDecodeWordsSkipsBlankAndCRLF(t *testing.T) {
	enc, err := charmap.ISO8859_7.NewEncoder().Bytes([]byte("2\r\nχιόνι\r\n\r\nχιόνια\r\n"))
	require.NoError(t, err)

	words, err := DecodeWords(enc)
	require.NoError(t, err)
	assert.Equal(t, []string{"χιόνι", "χιόνια"}, words)
}

func TestDecodeWordsUndecodable(t *testing.T) {
	// 0xAE is unassigned in ISO-8859-7 and a bare continuation byte in
	// UTF-8, so both attempts must fail.
	raw := []byte{'1', '\n', 0xAE, '\n'}
	_, err := DecodeWords(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iso-8859-7")
	assert.Contains(t, err.Error(), "utf-8")
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "el_GR.dic")
	require.NoError(t, os.WriteFile(path, []byte("1\nαλήθεια\n"), 0o644))

	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"αλήθεια"}, words)
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.dic"))
	require.Error(t, err)
}

func TestMineNeuters(t *testing.T) {
	words := []string{
		"χιόνι", "χιόνια", // kept: plural in the dictionary, proparoxytone
		"χούι", "χούγια", // kept via the γ-inserted plural
		"μάτι",             // plural absent, dropped
		"Χιόνι",            // capitalized, dropped
		"παιδί",            // final ι accented, dropped
		"τυρί",             // same
		"γάτα",             // not ι-final
		"ρολόι", "ρολόγια", // accented penult passes the vowel filter
	}
	got, err := MineNeuters(words, syllabify.Segment)
	require.NoError(t, err)
	assert.Equal(t, []string{"ρολόγια", "χιόνια", "χούγια"}, got)
}

func TestMineNeutersSkipsPlainVowelPenult(t *testing.T) {
	// A plain-vowel penult cannot take the word+α pluralization, so the
	// plural being listed does not matter.
	words := []string{"νόμοι", "νόμοια"}
	got, err := MineNeuters(words, syllabify.Segment)
	require.NoError(t, err)
	assert.Empty(t, got)
}
