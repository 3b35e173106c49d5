// Package shell implements the interactive boggle console.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/config"
	"github.com/teuncm/boggle/display"
	"github.com/teuncm/boggle/lexicon"
	"github.com/teuncm/boggle/solver"
)

// ShellController owns the readline instance and the session state: the
// current board and the result of the last solve.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	out io.Writer

	grid *board.Grid
	res  solver.Result
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "generate [size] - generate a fresh board (dice or random, per the gen setting)\n")
	io.WriteString(w, "board <row> <row> ... - set the board explicitly, e.g. board abc def ghi\n")
	io.WriteString(w, "solve - find all words on the current board\n")
	io.WriteString(w, "words - list the words of the last solve\n")
	io.WriteString(w, "show <word> - highlight the path of a found word\n")
	io.WriteString(w, "score - word count and total points of the last solve\n")
	io.WriteString(w, "set <option> <value> - change a setting (size, wordlist, sort, display, neighbors, gen, workers)\n")
	io.WriteString(w, "exit - leave the shell\n")
}

// NewShellController creates the shell with its readline instance.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "boggle> ",
		HistoryFile:         "/tmp/readline-boggle.tmp",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &ShellController{l: l, cfg: cfg, out: l.Stderr()}, nil
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !sc.execute(line) {
			break
		}
	}
	log.Debug().Msg("leaving shell loop")
}

// execute runs one command line; it returns false when the shell should exit.
func (sc *ShellController) execute(line string) bool {
	fields, err := shellquote.Split(line)
	if err != nil {
		showMessage("error: "+err.Error(), sc.out)
		return true
	}
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		usage(sc.out)
	case "generate":
		err = sc.generate(args)
	case "board":
		err = sc.setBoard(args)
	case "solve":
		err = sc.solve()
	case "words":
		err = sc.words()
	case "show":
		err = sc.show(args)
	case "score":
		err = sc.score()
	case "set":
		err = sc.set(args)
	default:
		showMessage("unknown command; type help for the command list", sc.out)
	}
	if err != nil {
		showMessage("error: "+err.Error(), sc.out)
	}
	return true
}

func (sc *ShellController) generate(args []string) error {
	size := sc.cfg.BoardSize
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad size %q: %w", args[0], err)
		}
		size = parsed
	}
	grid, err := GenerateBoard(sc.cfg, size)
	if err != nil {
		return err
	}
	sc.grid = grid
	sc.res = nil
	showMessage(display.Board(sc.grid), sc.out)
	return nil
}

func (sc *ShellController) setBoard(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("board needs its rows, e.g. board abc def ghi")
	}
	grid, err := board.New(args)
	if err != nil {
		return err
	}
	sc.grid = grid
	sc.res = nil
	showMessage(display.Board(sc.grid), sc.out)
	return nil
}

func (sc *ShellController) solve() error {
	if sc.grid == nil {
		return fmt.Errorf("no board yet; use generate or board first")
	}
	lex, err := lexicon.Load(sc.cfg.Wordlist, sc.grid.NumCells())
	if err != nil {
		return err
	}
	s := solver.New(sc.grid, lex, sc.cfg.AdjacencyMode())
	if sc.cfg.Workers > 1 {
		sc.res, err = s.SolveConcurrent(context.Background(), sc.cfg.Workers)
	} else {
		sc.res, err = s.Solve(context.Background())
	}
	if err != nil {
		return err
	}
	words := display.SortWords(sc.res, sc.cfg.SortMode())
	showMessage(display.Summary(words), sc.out)
	showMessage(display.Words(sc.grid, sc.res, sc.cfg.SortMode(), sc.cfg.DisplayMode()), sc.out)
	return nil
}

func (sc *ShellController) words() error {
	if sc.res == nil {
		return fmt.Errorf("nothing solved yet; use solve first")
	}
	words := display.SortWords(sc.res, sc.cfg.SortMode())
	showMessage(strings.Join(words, "\n"), sc.out)
	return nil
}

func (sc *ShellController) show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show needs exactly one word")
	}
	if sc.res == nil {
		return fmt.Errorf("nothing solved yet; use solve first")
	}
	word := strings.ToLower(args[0])
	path, ok := sc.res[word]
	if !ok {
		return fmt.Errorf("%q was not found on this board", word)
	}
	showMessage(display.PathOverlay(sc.grid, path), sc.out)
	return nil
}

func (sc *ShellController) score() error {
	if sc.res == nil {
		return fmt.Errorf("nothing solved yet; use solve first")
	}
	words := display.SortWords(sc.res, sc.cfg.SortMode())
	showMessage(display.Summary(words), sc.out)
	return nil
}

func (sc *ShellController) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("set needs an option and a value")
	}
	option, value := args[0], args[1]
	trial := *sc.cfg
	switch option {
	case "size":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad size %q: %w", value, err)
		}
		trial.BoardSize = parsed
	case "wordlist":
		trial.Wordlist = value
	case "sort":
		trial.Sort = value
	case "display":
		trial.Display = value
	case "neighbors":
		trial.Neighbors = value
	case "gen":
		trial.Gen = value
	case "workers":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad worker count %q: %w", value, err)
		}
		trial.Workers = parsed
	default:
		return fmt.Errorf("unknown option %q", option)
	}
	if err := trial.Validate(); err != nil {
		return err
	}
	*sc.cfg = trial
	showMessage(fmt.Sprintf("%s = %s", option, value), sc.out)
	return nil
}

// GenerateBoard builds a board of the given size using the configured
// generator.
func GenerateBoard(cfg *config.Config, size int) (*board.Grid, error) {
	if cfg.Gen == "random" {
		return board.Random(size)
	}
	dice, err := cfg.DiceSet()
	if err != nil {
		return nil, err
	}
	return board.FromDice(size, dice)
}
