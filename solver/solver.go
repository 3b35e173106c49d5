// Package solver implements the Boggle search engine: a pruned depth-first
// enumeration of every dictionary word that can be traced as a path of
// adjacent, non-repeating cells on a board.
package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/lexicon"
)

// Result maps each found word to its witnessing path. The first path
// discovered for a word wins; later paths spelling the same word are
// discarded.
type Result map[string]board.Path

// How many search transitions pass between context checks.
const checkInterval = 1024

// A Solver searches one board against one lexicon under a fixed adjacency
// mode. The board and lexicon are read-only and may be shared; a Solver
// itself holds no search state, so one Solver can serve repeated solves.
type Solver struct {
	grid *board.Grid
	lex  *lexicon.Lexicon
	mode board.AdjacencyMode
}

// New creates a solver for the given board, lexicon and adjacency mode.
func New(g *board.Grid, lex *lexicon.Lexicon, mode board.AdjacencyMode) *Solver {
	return &Solver{grid: g, lex: lex, mode: mode}
}

// Solve runs the search to completion and returns every findable word with
// one witnessing path each. A cancelled context aborts the search, returning
// the words found so far along with the context error.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	start := time.Now()
	found := make(Result)
	err := s.solveFrom(ctx, s.grid.Cells(), found)
	log.Debug().
		Int("words", len(found)).
		Str("mode", s.mode.String()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return found, err
}

// solveFrom enumerates all paths beginning at the given start cells and
// records dictionary words into found.
//
// The search is iterative rather than recursive so call-stack depth never
// limits board size. Three parallel stacks carry the state: a frontier of
// not-yet-tried candidate cells per depth, the working path, and the path's
// letters (cached so the candidate word is a plain concatenation). Each
// frontier level is consumed from the end, which fixes the exploration order
// and therefore which witnessing path gets recorded for each word.
func (s *Solver) solveFrom(ctx context.Context, starts []board.Cell, found Result) error {
	maxDepth := s.grid.NumCells()
	frontier := make([][]board.Cell, 1, maxDepth)
	frontier[0] = starts
	path := make(board.Path, 1, maxDepth)
	letters := make([]rune, 1, maxDepth)

	steps := 0
	for len(frontier) > 0 {
		steps++
		if steps%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		top := frontier[len(frontier)-1]
		if len(top) == 0 {
			// Nothing left to try at this depth; backtrack.
			frontier = frontier[:len(frontier)-1]
			path = path[:len(path)-1]
			letters = letters[:len(letters)-1]
			continue
		}

		cell := top[len(top)-1]
		frontier[len(frontier)-1] = top[:len(top)-1]
		letter, err := s.grid.Letter(cell)
		if err != nil {
			// Unreachable: every frontier cell came from Cells or Neighbors.
			return err
		}
		path[len(path)-1] = cell
		letters[len(letters)-1] = letter

		candidate := string(letters)
		if !s.lex.HasPrefix(candidate) {
			// No dictionary word starts with these letters; the whole
			// subtree below this cell is dead.
			continue
		}
		if s.lex.HasWord(candidate) {
			if _, ok := found[candidate]; !ok {
				found[candidate] = path.Copy()
			}
		}

		next := s.grid.Neighbors(cell, s.mode, path)
		if len(next) > 0 {
			frontier = append(frontier, next)
			path = append(path, board.Cell{})
			letters = append(letters, 0)
		}
	}
	return nil
}
