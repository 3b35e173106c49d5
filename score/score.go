// Package score assigns standard Boggle point values to found words.
package score

import "github.com/samber/lo"

// Points returns the Boggle point value of a word by length: 3-4 letters are
// worth 1 point, then 2, 3, 5, and 11 for 8 letters or more. Shorter words
// also score 1, matching house rules where a 2-letter word counts; the solver
// decides what is findable, not the scorer.
func Points(word string) int {
	switch n := len(word); {
	case n == 0:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// Total sums the point values of all words. An empty collection scores 0.
func Total(words []string) int {
	return lo.SumBy(words, Points)
}
