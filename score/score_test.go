package score

import (
	"testing"

	"github.com/matryer/is"
)

type pointsTestPair struct {
	word   string
	points int
}

func TestPoints(t *testing.T) {
	var pointsTests = []pointsTestPair{
		{"", 0},
		{"at", 1},
		{"cat", 1},
		{"cats", 1},
		{"crate", 2},
		{"crates", 3},
		{"cratons", 5},
		{"creation", 11},
		{"creations", 11},
		{"unquestionably", 11},
	}
	for _, pair := range pointsTests {
		if got := Points(pair.word); got != pair.points {
			t.Error("For", pair.word, "expected", pair.points, "got", got)
		}
	}
}

func TestTotal(t *testing.T) {
	is := is.New(t)
	words := []string{"cat", "crate", "creation"}
	is.Equal(Total(words), 1+2+11)

	// Additivity: total equals the sum of the parts.
	sum := 0
	for _, w := range words {
		sum += Points(w)
	}
	is.Equal(Total(words), sum)
}

func TestTotalEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(Total(nil), 0)
	is.Equal(Total([]string{}), 0)
}
