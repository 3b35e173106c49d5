// Package lexicon holds the dictionary the solver searches against: the word
// set itself plus a derived prefix index used for branch pruning.
package lexicon

import "strings"

// A Lexicon is an immutable word set with a prefix index. Prefixes are only
// recorded up to maxPathLength letters, since a path on an n x n board can
// never visit more than n*n cells; longer words can still be stored but can
// never be found.
type Lexicon struct {
	words         map[string]struct{}
	prefixes      map[string]struct{}
	maxPathLength int
}

// New builds a lexicon from raw words, case-folding them. maxPathLength
// bounds the prefix index; pass the board's cell count.
func New(words []string, maxPathLength int) *Lexicon {
	lex := &Lexicon{
		words:         make(map[string]struct{}, len(words)),
		prefixes:      make(map[string]struct{}, len(words)*2),
		maxPathLength: maxPathLength,
	}
	for _, w := range words {
		w = strings.ToLower(w)
		if w == "" {
			continue
		}
		lex.words[w] = struct{}{}
		limit := len(w)
		if limit > maxPathLength {
			limit = maxPathLength
		}
		for i := 1; i <= limit; i++ {
			lex.prefixes[w[:i]] = struct{}{}
		}
	}
	return lex
}

// HasWord reports whether w is a dictionary word.
func (lex *Lexicon) HasWord(w string) bool {
	_, ok := lex.words[w]
	return ok
}

// HasPrefix reports whether p is a prefix (within the path-length bound) of
// at least one dictionary word. The solver prunes any branch whose candidate
// letters fail this check.
func (lex *Lexicon) HasPrefix(p string) bool {
	_, ok := lex.prefixes[p]
	return ok
}

// Len returns the number of dictionary words.
func (lex *Lexicon) Len() int {
	return len(lex.words)
}

// MaxPathLength returns the prefix-index bound the lexicon was built with.
func (lex *Lexicon) MaxPathLength() int {
	return lex.maxPathLength
}
