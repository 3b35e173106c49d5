package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/teuncm/boggle/board"
	"github.com/teuncm/boggle/display"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.BoardSize, 4)
	is.Equal(cfg.Sort, "size")
	is.Equal(cfg.Display, "fancy")
	is.Equal(cfg.Neighbors, "all")
	is.Equal(cfg.Gen, "dice")
	is.Equal(cfg.Workers, 1)
	is.True(!cfg.Debug)
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("BOGGLE_SIZE", "6")
	t.Setenv("BOGGLE_NEIGHBORS", "no_diag")
	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.BoardSize, 6)
	is.Equal(cfg.AdjacencyMode(), board.AdjacencyNoDiag)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "boggle.yaml")
	err := os.WriteFile(path, []byte("size: 3\nsort: abc\nworkers: 4\n"), 0644)
	is.NoErr(err)

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.BoardSize, 3)
	is.Equal(cfg.SortMode(), display.SortAlphabetical)
	is.Equal(cfg.Workers, 4)
}

func TestValidateRejectsBadValues(t *testing.T) {
	is := is.New(t)
	base, err := Load("")
	is.NoErr(err)

	for _, mutate := range []func(c *Config){
		func(c *Config) { c.BoardSize = 0 },
		func(c *Config) { c.Neighbors = "hex" },
		func(c *Config) { c.Sort = "random" },
		func(c *Config) { c.Display = "loud" },
		func(c *Config) { c.Gen = "psychic" },
	} {
		cfg := *base
		mutate(&cfg)
		is.True(cfg.Validate() != nil)
	}
}

func TestDiceSetFallsBackToDefault(t *testing.T) {
	is := is.New(t)
	cfg, err := Load("")
	is.NoErr(err)
	ds, err := cfg.DiceSet()
	is.NoErr(err)
	is.Equal(ds.Name, "classic")
}
