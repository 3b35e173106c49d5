// Package board contains the Boggle board representation: a square grid of
// single lowercase letters, plus the adjacency queries the solver needs.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// A Cell is a (row, col) coordinate on the board, 0-indexed from the top left.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// A Path is an ordered sequence of distinct cells; each consecutive pair is
// adjacent under the adjacency mode the path was found with. The solver hands
// out one witnessing path per found word.
type Path []Cell

// Contains returns true if the path visits c.
func (p Path) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Copy returns a new path with the same cells. The solver mutates its working
// path in place, so recorded paths must be copies.
func (p Path) Copy() Path {
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// AdjacencyMode selects which cells count as neighbors of a cell.
type AdjacencyMode uint8

const (
	// AdjacencyAll uses all 8 surrounding cells (standard Boggle).
	AdjacencyAll AdjacencyMode = iota
	// AdjacencyNoDiag restricts neighbors to the 4 axis-aligned cells.
	AdjacencyNoDiag
)

func (m AdjacencyMode) String() string {
	if m == AdjacencyNoDiag {
		return "no_diag"
	}
	return "all"
}

// ParseAdjacencyMode maps the user-facing mode names to a mode tag.
func ParseAdjacencyMode(s string) (AdjacencyMode, error) {
	switch strings.ToLower(s) {
	case "all":
		return AdjacencyAll, nil
	case "no_diag", "nodiag":
		return AdjacencyNoDiag, nil
	}
	return 0, fmt.Errorf("unknown adjacency mode %q", s)
}

// Offset tables are fixed arrays so neighbor enumeration order is
// deterministic; witnessing-path selection depends on it.
var allOffsets = [8]Cell{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, 1}, {1, -1},
}

var orthoOffsets = [4]Cell{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
}

var (
	// ErrNotSquare is returned when the given rows do not form a square board.
	ErrNotSquare = errors.New("board must be square")
	// ErrOutOfBounds is returned when a queried cell lies outside the board.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrEmptyBoard is returned when no rows are given at all.
	ErrEmptyBoard = errors.New("board must have at least one row")
)

// A Grid is an immutable square matrix of single lowercase letters. It is
// safe for concurrent readers once constructed.
type Grid struct {
	rows [][]rune
	dim  int
}

// New builds a grid from row strings, lowercasing them. It fails if the rows
// do not form a square matrix.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}
	g := &Grid{dim: len(rows)}
	for i, row := range rows {
		letters := []rune(strings.ToLower(row))
		if len(letters) != g.dim {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d",
				ErrNotSquare, i, len(letters), g.dim)
		}
		g.rows = append(g.rows, letters)
	}
	return g, nil
}

// Dim returns the board dimension (number of rows and columns).
func (g *Grid) Dim() int {
	return g.dim
}

// NumCells returns the total cell count. It bounds the length of any path,
// and therefore of any findable word.
func (g *Grid) NumCells() int {
	return g.dim * g.dim
}

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.dim && c.Col >= 0 && c.Col < g.dim
}

// Letter returns the letter at c, or ErrOutOfBounds if c is off the board.
func (g *Grid) Letter(c Cell) (rune, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.dim, g.dim)
	}
	return g.rows[c.Row][c.Col], nil
}

// Cells returns every cell of the board in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.NumCells())
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			cells = append(cells, Cell{row, col})
		}
	}
	return cells
}

// Neighbors returns the cells adjacent to c under mode, skipping anything off
// the board or already on the excluded path. The result order follows the
// fixed offset tables.
func (g *Grid) Neighbors(c Cell, mode AdjacencyMode, excluded Path) []Cell {
	offsets := allOffsets[:]
	if mode == AdjacencyNoDiag {
		offsets = orthoOffsets[:]
	}
	var neighbors []Cell
	for _, off := range offsets {
		n := Cell{c.Row + off.Row, c.Col + off.Col}
		if !g.InBounds(n) || excluded.Contains(n) {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// Rows returns the board letters as strings, one per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.dim)
	for i, r := range g.rows {
		rows[i] = string(r)
	}
	return rows
}

// Word spells out the letters along a path. It fails if any cell of the path
// is off the board.
func (g *Grid) Word(p Path) (string, error) {
	letters := make([]rune, len(p))
	for i, c := range p {
		letter, err := g.Letter(c)
		if err != nil {
			return "", err
		}
		letters[i] = letter
	}
	return string(letters), nil
}
