package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestHasWordAndPrefix(t *testing.T) {
	is := is.New(t)
	lex := New([]string{"boggle", "bog"}, 16)

	is.True(lex.HasWord("boggle"))
	is.True(lex.HasWord("bog"))
	is.True(!lex.HasWord("bogg"))

	for i := 1; i <= len("boggle"); i++ {
		is.True(lex.HasPrefix("boggle"[:i]))
	}
	is.True(!lex.HasPrefix("x"))
	is.True(!lex.HasPrefix(""))
}

func TestPrefixTruncationBound(t *testing.T) {
	is := is.New(t)
	// On a 2x2 board paths have at most 4 cells, so prefixes stop there.
	lex := New([]string{"abcdef"}, 4)

	is.True(lex.HasPrefix("abcd"))
	is.True(!lex.HasPrefix("abcde"))
	is.True(!lex.HasPrefix("abcdef"))
	// The full word is still stored; it just can never be found on the board.
	is.True(lex.HasWord("abcdef"))
	is.Equal(lex.MaxPathLength(), 4)
}

func TestCaseFolding(t *testing.T) {
	is := is.New(t)
	lex := New([]string{"Bog", "GLE"}, 9)
	is.True(lex.HasWord("bog"))
	is.True(lex.HasWord("gle"))
	is.True(lex.HasPrefix("gl"))
}

func TestEmptyWordsSkipped(t *testing.T) {
	is := is.New(t)
	lex := New([]string{"", "a"}, 9)
	is.Equal(lex.Len(), 1)
	is.True(!lex.HasWord(""))
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte("ab\nac\nabc\n\nba\n"), 0644)
	is.NoErr(err)

	lex, err := Load(path, 4)
	is.NoErr(err)
	is.Equal(lex.Len(), 4)
	is.True(lex.HasWord("abc"))
}

func TestLoadCacheHit(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte("cachehit\n"), 0644)
	is.NoErr(err)

	first, err := Load(path, 16)
	is.NoErr(err)
	second, err := Load(path, 16)
	is.NoErr(err)
	is.True(first == second)

	// A different prefix bound is a different lexicon.
	other, err := Load(path, 4)
	is.NoErr(err)
	is.True(first != other)
}

func TestLoadCacheKeyedByContents(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte("before\n"), 0644)
	is.NoErr(err)

	first, err := Load(path, 16)
	is.NoErr(err)

	err = os.WriteFile(path, []byte("after\n"), 0644)
	is.NoErr(err)
	second, err := Load(path, 16)
	is.NoErr(err)

	is.True(first != second)
	is.True(second.HasWord("after"))
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 16)
	is.True(err != nil)
}

func TestReadWords(t *testing.T) {
	is := is.New(t)
	words, err := ReadWords(strings.NewReader("one\r\ntwo\n\nthree"))
	is.NoErr(err)
	is.Equal(words, []string{"one", "two", "three"})
}
