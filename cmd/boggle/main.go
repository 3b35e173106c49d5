package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/config"
	"github.com/teuncm/boggle/display"
	"github.com/teuncm/boggle/lexicon"
	"github.com/teuncm/boggle/shell"
	"github.com/teuncm/boggle/solver"
)

func main() {
	configFile := flag.String("config", "", "optional config file; settings also come from BOGGLE_* env vars")
	size := flag.Int("size", 0, "board size")
	boardRows := flag.String("board", "", `board rows separated by spaces, e.g. "abc def ghi"; overrides size and gen`)
	wordlist := flag.String("wordlist", "", "wordlist file, one word per line")
	sortMode := flag.String("sort", "", "sort order for found words: abc, size or none")
	displayMode := flag.String("display", "", "display method for found words: plain or fancy")
	neighbors := flag.String("neighbors", "", "adjacency mode: all or no_diag")
	gen := flag.String("gen", "", "board generator: dice or random")
	diceFile := flag.String("dice-file", "", "YAML dice set definition; empty uses the classic set")
	workers := flag.Int("workers", 0, "solver workers; above 1 partitions starting cells")
	debug := flag.Bool("debug", false, "debug logging")
	interactive := flag.Bool("shell", false, "start the interactive shell")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	// Flags the user actually passed override config/env.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.BoardSize = *size
		case "wordlist":
			cfg.Wordlist = *wordlist
		case "sort":
			cfg.Sort = *sortMode
		case "display":
			cfg.Display = *displayMode
		case "neighbors":
			cfg.Neighbors = *neighbors
		case "gen":
			cfg.Gen = *gen
		case "dice-file":
			cfg.DiceFile = *diceFile
		case "workers":
			cfg.Workers = *workers
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad settings")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *interactive {
		sc, err := shell.NewShellController(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("starting shell")
		}
		sc.Loop()
		return
	}

	var grid *board.Grid
	if *boardRows != "" {
		grid, err = board.New(strings.Fields(*boardRows))
	} else {
		grid, err = shell.GenerateBoard(cfg, cfg.BoardSize)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("building board")
	}

	lex, err := lexicon.Load(cfg.Wordlist, grid.NumCells())
	if err != nil {
		log.Fatal().Err(err).Msg("loading wordlist")
	}

	s := solver.New(grid, lex, cfg.AdjacencyMode())
	var res solver.Result
	if cfg.Workers > 1 {
		res, err = s.SolveConcurrent(context.Background(), cfg.Workers)
	} else {
		res, err = s.Solve(context.Background())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solving")
	}

	fmt.Println()
	fmt.Printf("Board: %s\n\n", display.BoardInline(grid))
	fmt.Println(display.Board(grid))
	words := display.SortWords(res, cfg.SortMode())
	fmt.Print(display.Summary(words))
	fmt.Print(display.Words(grid, res, cfg.SortMode(), cfg.DisplayMode()))
}
