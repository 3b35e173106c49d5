package board

import (
	"fmt"

	"lukechampine.com/frand"
)

const asciiLowercase = "abcdefghijklmnopqrstuvwxyz"

// Random builds a size x size board of uniformly random lowercase letters.
func Random(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("board size must be at least 1, got %d", size)
	}
	letters := make([]rune, size*size)
	for i := range letters {
		letters[i] = rune(asciiLowercase[frand.Intn(len(asciiLowercase))])
	}
	return fromLetters(size, letters), nil
}

// FromDice builds a size x size board by throwing the given dice set. When the
// board has no more cells than dice, each die is used at most once; larger
// boards re-roll dice with replacement.
func FromDice(size int, set *DiceSet) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("board size must be at least 1, got %d", size)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	numLetters := size * size

	positions := make([]int, numLetters)
	if numLetters <= len(set.Dice) {
		// Sample dice without replacement.
		perm := frand.Perm(len(set.Dice))
		copy(positions, perm[:numLetters])
	} else {
		for i := range positions {
			positions[i] = frand.Intn(len(set.Dice))
		}
	}

	letters := make([]rune, numLetters)
	for i, pos := range positions {
		faces := []rune(set.Dice[pos])
		letters[i] = faces[frand.Intn(len(faces))]
	}
	return fromLetters(size, letters), nil
}

func fromLetters(size int, letters []rune) *Grid {
	g := &Grid{dim: size}
	for row := 0; row < size; row++ {
		g.rows = append(g.rows, letters[row*size:(row+1)*size])
	}
	return g
}
