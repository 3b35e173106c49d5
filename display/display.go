// Package display renders boards, witnessing paths, and score summaries for
// the terminal. The engine itself returns plain data; everything visual
// lives here.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/score"
	"github.com/teuncm/boggle/solver"
)

// SortMode selects the presentation order of found words.
type SortMode uint8

const (
	// SortBySize orders by word length, then alphabetically.
	SortBySize SortMode = iota
	// SortAlphabetical orders words alphabetically.
	SortAlphabetical
	// SortNone leaves the order unspecified.
	SortNone
)

// ParseSortMode maps the user-facing sort names to a mode tag.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(s) {
	case "size":
		return SortBySize, nil
	case "abc":
		return SortAlphabetical, nil
	case "none":
		return SortNone, nil
	}
	return 0, fmt.Errorf("unknown sort mode %q", s)
}

func (m SortMode) String() string {
	switch m {
	case SortAlphabetical:
		return "abc"
	case SortNone:
		return "none"
	}
	return "size"
}

// Mode selects between a plain word listing and a fancy one with the
// witnessing path highlighted on the board.
type Mode uint8

const (
	Fancy Mode = iota
	Plain
)

// ParseMode maps the user-facing display names to a mode tag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "fancy":
		return Fancy, nil
	case "plain":
		return Plain, nil
	}
	return 0, fmt.Errorf("unknown display mode %q", s)
}

func (m Mode) String() string {
	if m == Plain {
		return "plain"
	}
	return "fancy"
}

var (
	startStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("1")).
			Foreground(lipgloss.Color("15"))
	pathStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("4")).
			Foreground(lipgloss.Color("15"))
)

// SortWords returns the result's words in the requested order.
func SortWords(res solver.Result, mode SortMode) []string {
	words := lo.Keys(res)
	switch mode {
	case SortAlphabetical:
		sort.Strings(words)
	case SortBySize:
		sort.Slice(words, func(i, j int) bool {
			if len(words[i]) != len(words[j]) {
				return len(words[i]) < len(words[j])
			}
			return words[i] < words[j]
		})
	}
	return words
}

// Board renders the board as uppercase letters, one row per line.
func Board(g *board.Grid) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		letters := strings.Split(strings.ToUpper(row), "")
		sb.WriteString(strings.Join(letters, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// BoardInline renders the board as one copy-pasteable line, rows separated by
// spaces, suitable for feeding back to the board flag.
func BoardInline(g *board.Grid) string {
	rows := lo.Map(g.Rows(), func(row string, _ int) string {
		return strings.ToUpper(row)
	})
	return strings.Join(rows, " ")
}

// PathOverlay renders the board with a witnessing path highlighted. The
// starting cell gets its own style so the reading direction is visible.
func PathOverlay(g *board.Grid, p board.Path) string {
	var sb strings.Builder
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			cell := board.Cell{Row: row, Col: col}
			letter, _ := g.Letter(cell)
			display := strings.ToUpper(string(letter))
			switch {
			case len(p) > 0 && p[0] == cell:
				display = startStyle.Render(display)
			case p.Contains(cell):
				display = pathStyle.Render(display)
			}
			sb.WriteString(display)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary formats the overall result line: word count and total score.
func Summary(words []string) string {
	return fmt.Sprintf("%d word(s), %d point(s)!\n%s\n",
		len(words), score.Total(words), strings.Repeat("-", 25))
}

// Words renders the found words in the given sort order. Fancy mode follows
// each word with its witnessing path highlighted on the board.
func Words(g *board.Grid, res solver.Result, sortMode SortMode, mode Mode) string {
	var sb strings.Builder
	for _, word := range SortWords(res, sortMode) {
		fmt.Fprintf(&sb, "%s - %d\n", word, score.Points(word))
		if mode == Fancy {
			sb.WriteString(PathOverlay(g, res[word]))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
