// Package config holds the runtime settings shared by the boggle binary and
// the interactive shell.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/display"
)

// Config collects every user-tunable setting. Values come from defaults, the
// BOGGLE_* environment, and an optional config file, in increasing priority;
// command-line flags may overwrite fields afterwards.
type Config struct {
	BoardSize int
	Wordlist  string
	DiceFile  string
	Sort      string
	Display   string
	Neighbors string
	Gen       string
	Workers   int
	Debug     bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("size", 4)
	v.SetDefault("wordlist", "wordlist.txt")
	v.SetDefault("dice-file", "")
	v.SetDefault("sort", "size")
	v.SetDefault("display", "fancy")
	v.SetDefault("neighbors", "all")
	v.SetDefault("gen", "dice")
	v.SetDefault("workers", 1)
	v.SetDefault("debug", false)
	v.SetEnvPrefix("boggle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load builds a Config from defaults, environment, and optionally a config
// file.
func Load(configFile string) (*Config, error) {
	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	cfg := &Config{
		BoardSize: v.GetInt("size"),
		Wordlist:  v.GetString("wordlist"),
		DiceFile:  v.GetString("dice-file"),
		Sort:      v.GetString("sort"),
		Display:   v.GetString("display"),
		Neighbors: v.GetString("neighbors"),
		Gen:       v.GetString("gen"),
		Workers:   v.GetInt("workers"),
		Debug:     v.GetBool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every enumerated setting parses and the numbers are
// sane.
func (c *Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("board size must be at least 1, got %d", c.BoardSize)
	}
	if _, err := board.ParseAdjacencyMode(c.Neighbors); err != nil {
		return err
	}
	if _, err := display.ParseSortMode(c.Sort); err != nil {
		return err
	}
	if _, err := display.ParseMode(c.Display); err != nil {
		return err
	}
	if c.Gen != "dice" && c.Gen != "random" {
		return fmt.Errorf("unknown board generator %q", c.Gen)
	}
	return nil
}

// AdjacencyMode returns the parsed neighbors setting. Validate must have
// passed.
func (c *Config) AdjacencyMode() board.AdjacencyMode {
	mode, _ := board.ParseAdjacencyMode(c.Neighbors)
	return mode
}

// SortMode returns the parsed sort setting. Validate must have passed.
func (c *Config) SortMode() display.SortMode {
	mode, _ := display.ParseSortMode(c.Sort)
	return mode
}

// DisplayMode returns the parsed display setting. Validate must have passed.
func (c *Config) DisplayMode() display.Mode {
	mode, _ := display.ParseMode(c.Display)
	return mode
}

// DiceSet loads the configured dice set, falling back to the embedded classic
// set when no file is configured.
func (c *Config) DiceSet() (*board.DiceSet, error) {
	if c.DiceFile == "" {
		return board.DefaultDiceSet(), nil
	}
	return board.LoadDiceSet(c.DiceFile)
}
